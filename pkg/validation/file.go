package validation

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeZIP  = "application/zip"
)

type UploadRules struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
}

// SpreadsheetImport - правила для импорта справочников из Excel.
// xlsx от некоторых генераторов распознаётся как обычный zip, содержимое потом проверяет excelize.
var SpreadsheetImport = UploadRules{
	AllowedMimeTypes: []string{mimeXLSX, mimeZIP},
	MaxSizeMB:        10,
}

// ValidateFile проверяет размер и тип файла по содержимому, а не по расширению.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, rules UploadRules) error {
	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return fmt.Errorf("размер файла (%.2f MB) превышает лимит в %d MB", float64(fileHeader.Size)/1024/1024, rules.MaxSizeMB)
		}
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла: %w", err)
	}
	// Возвращаем курсор чтения в начало
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("ошибка обработки файла: %w", err)
	}

	for _, allowed := range rules.AllowedMimeTypes {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return fmt.Errorf("недопустимый формат файла: %s", mtype.String())
}
