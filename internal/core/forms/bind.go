package forms

import (
	"fmt"
	"io"
	"mime/multipart"
)

// Bind переносит значения HTTP multipart-формы в зарегистрированные поля.
// Для файловых полей читается только первый файл, не больше maxFileBytes+1 байт:
// превышение ловит правило MaxFileSize.
func (f *Form) Bind(mf *multipart.Form, maxFileBytes int64) error {
	if mf == nil {
		return nil
	}
	for name, values := range mf.Value {
		if len(values) == 0 {
			continue
		}
		if fl, ok := f.index[name]; ok && fl.kind == textField {
			fl.value.Text = values[0]
		}
	}
	for name, headers := range mf.File {
		fl, ok := f.index[name]
		if !ok || fl.kind != fileField || len(headers) == 0 {
			continue
		}
		file, err := ReadFileHeader(headers[0], maxFileBytes)
		if err != nil {
			return fmt.Errorf("form %s: field %s: %w", f.name, name, err)
		}
		fl.value.Files = []File{file}
	}
	return nil
}

// ReadFileHeader читает загруженный файл, не больше maxFileBytes+1 байт.
func ReadFileHeader(h *multipart.FileHeader, maxFileBytes int64) (File, error) {
	src, err := h.Open()
	if err != nil {
		return File{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxFileBytes+1))
	if err != nil {
		return File{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return File{Name: h.Filename, ContentType: h.Header.Get("Content-Type"), Data: data}, nil
}
