package snapshot

import (
	"context"
	"fmt"
	"io"

	"stock-regul/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReadRows reads the first sheet of an xlsx stream into raw rows.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// FetchRows downloads a staged snapshot object and reads its rows.
func FetchRows(ctx context.Context, client storage.Client, bucket, object string) ([][]string, error) {
	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot %s: %w", object, err)
	}
	defer obj.Close()

	rows, err := ReadRows(obj)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", object, err)
	}
	return rows, nil
}

// NewWorkbook builds a single-sheet workbook from a header and raw rows.
// Used by the extraction step to stage snapshots.
func NewWorkbook(sheet string, headerRow []string, rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}
	if err := writeStringRow(f, sheet, 1, headerRow); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeStringRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Upload writes a workbook into the bucket under the given object name.
func Upload(ctx context.Context, client storage.Client, bucket, object string, f *excelize.File) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to serialize workbook: %w", err)
	}
	_, err = client.PutObject(ctx, bucket, object, buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: xlsxContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return nil
}

func writeStringRow(f *excelize.File, sheet string, row int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &cells)
}
