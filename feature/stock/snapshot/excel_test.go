package snapshot

import (
	"bytes"
	"context"
	"io"
	"testing"

	"stock-regul/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkbookRoundTrip(t *testing.T) {
	f, err := NewWorkbook("Sheet1",
		[]string{"SKU", "Quantite"},
		[][]string{
			{"A1", "10"},
			{"A2", "3.5"},
		})
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"SKU", "Quantite"}, rows[0])
	assert.Equal(t, []string{"A1", "10"}, rows[1])
	assert.Equal(t, []string{"A2", "3.5"}, rows[2])
}

func TestFetchRows(t *testing.T) {
	f, err := NewWorkbook("Sheet1", []string{"PO"}, [][]string{{"L1"}})
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	f.Close()

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "snapshots/web_pos.xlsx", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(buf.Bytes())), nil)

	rows, err := FetchRows(context.Background(), client, "bucket", "snapshots/web_pos.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "L1", rows[1][0])
	client.AssertExpectations(t)
}

func TestFetchRows_NotAWorkbook(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "bucket", "bad.xlsx", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("not an xlsx"))), nil)

	_, err := FetchRows(context.Background(), client, "bucket", "bad.xlsx")
	assert.Error(t, err)
}

func TestUpload(t *testing.T) {
	f, err := NewWorkbook("Sheet1", []string{"SKU"}, nil)
	require.NoError(t, err)
	defer f.Close()

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", "outputs/regul_stock.xlsx",
		mock.Anything, mock.AnythingOfType("int64"),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == xlsxContentType
		})).
		Return(minio.UploadInfo{}, nil)

	err = Upload(context.Background(), client, "bucket", "outputs/regul_stock.xlsx", f)
	require.NoError(t, err)
	client.AssertExpectations(t)
}
