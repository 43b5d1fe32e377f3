package forms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"

	"real-estate-manager/internal/core/port"
)

type fieldKind int

const (
	textField fieldKind = iota
	fileField
)

// FieldState управляет подсветкой поля: до отправки - untouched,
// после отправки - valid или invalid.
type FieldState string

const (
	FieldUntouched FieldState = "untouched"
	FieldValid     FieldState = "valid"
	FieldInvalid   FieldState = "invalid"
)

// FieldError - первое нарушенное правило поля
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError возвращается, если форма не прошла клиентскую валидацию.
// States содержит состояние каждого зарегистрированного поля формы.
type ValidationError struct {
	Form      string
	Submitted bool
	Fields    map[string]FieldError
	States    map[string]FieldState
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("form %s: validation failed for fields: %s", e.Form, strings.Join(names, ", "))
}

type field struct {
	name  string
	kind  fieldKind
	rules []Rule
	value Value
}

// Form - набор зарегистрированных полей с правилами, значениями и состоянием ошибок.
// Form не потокобезопасна: один экземпляр обслуживает одну отправку.
type Form struct {
	name      string
	fields    []*field
	index     map[string]*field
	errors    map[string]FieldError
	submitted bool
}

func New(name string) *Form {
	return &Form{
		name:   name,
		index:  make(map[string]*field),
		errors: make(map[string]FieldError),
	}
}

func (f *Form) Name() string { return f.name }

// Register добавляет текстовое поле.
func (f *Form) Register(name string, rules ...Rule) *Form {
	return f.register(name, textField, rules)
}

// RegisterFile добавляет файловое поле; хранится только первый файл.
func (f *Form) RegisterFile(name string, rules ...Rule) *Form {
	return f.register(name, fileField, rules)
}

func (f *Form) register(name string, kind fieldKind, rules []Rule) *Form {
	if existing, ok := f.index[name]; ok {
		existing.kind = kind
		existing.rules = rules
		return f
	}
	fl := &field{name: name, kind: kind, rules: rules}
	f.fields = append(f.fields, fl)
	f.index[name] = fl
	return f
}

func (f *Form) SetValue(name, value string) error {
	fl, ok := f.index[name]
	if !ok || fl.kind != textField {
		return fmt.Errorf("form %s: unknown text field %q", f.name, name)
	}
	fl.value.Text = value
	return nil
}

// SetFile заменяет выбранный файл поля.
func (f *Form) SetFile(name string, file File) error {
	fl, ok := f.index[name]
	if !ok || fl.kind != fileField {
		return fmt.Errorf("form %s: unknown file field %q", f.name, name)
	}
	fl.value.Files = []File{file}
	return nil
}

// Restore подставляет сохраненные значения черновика; неизвестные ключи пропускаются.
func (f *Form) Restore(values map[string]string) {
	for name, value := range values {
		_ = f.SetValue(name, value)
	}
}

// Values - текстовые значения, пригодные для сохранения черновика.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		if fl.kind == textField {
			values[fl.name] = fl.value.Text
		}
	}
	return values
}

func (f *Form) Value(name string) (string, bool) {
	fl, ok := f.index[name]
	if !ok {
		return "", false
	}
	return fl.value.Text, true
}

// Validate проверяет все поля и выставляет флаг отправки.
// Для каждого поля сохраняется первое нарушенное правило.
func (f *Form) Validate() bool {
	f.submitted = true
	f.errors = make(map[string]FieldError)

	for _, fl := range f.fields {
		for _, rule := range fl.rules {
			if rule.passes(fl.value) {
				continue
			}
			f.errors[fl.name] = FieldError{Field: fl.name, Rule: rule.Name, Message: rule.Message}
			break
		}
	}
	return len(f.errors) == 0
}

func (f *Form) Errors() map[string]FieldError {
	out := make(map[string]FieldError, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) IsSubmitted() bool { return f.submitted }

// FieldStates - состояния всех зарегистрированных полей.
func (f *Form) FieldStates() map[string]FieldState {
	states := make(map[string]FieldState, len(f.fields))
	for _, fl := range f.fields {
		states[fl.name] = f.FieldState(fl.name)
	}
	return states
}

// ValidationError снимает текущее состояние формы.
func (f *Form) ValidationError() *ValidationError {
	return &ValidationError{
		Form:      f.name,
		Submitted: f.submitted,
		Fields:    f.Errors(),
		States:    f.FieldStates(),
	}
}

// RejectFiles отмечает форму отправленной и проваливает правило ruleName
// у всех файловых полей, где оно есть. Нужна, когда тело запроса
// отброшено до разбора: текстовые поля не проверялись и остаются untouched.
func (f *Form) RejectFiles(ruleName string) *ValidationError {
	f.submitted = true
	f.errors = make(map[string]FieldError)
	for _, fl := range f.fields {
		if fl.kind != fileField {
			continue
		}
		for _, rule := range fl.rules {
			if rule.Name == ruleName {
				f.errors[fl.name] = FieldError{Field: fl.name, Rule: rule.Name, Message: rule.Message}
				break
			}
		}
	}

	verr := f.ValidationError()
	for _, fl := range f.fields {
		if fl.kind == textField {
			verr.States[fl.name] = FieldUntouched
		}
	}
	return verr
}

func (f *Form) FieldState(name string) FieldState {
	if !f.submitted {
		return FieldUntouched
	}
	if _, failed := f.errors[name]; failed {
		return FieldInvalid
	}
	return FieldValid
}

// Multipart упаковывает значения в multipart/form-data в порядке регистрации полей.
// Пустые текстовые значения не передаются.
func (f *Form) Multipart() (port.MultipartBody, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for _, fl := range f.fields {
		switch fl.kind {
		case textField:
			if strings.TrimSpace(fl.value.Text) == "" {
				continue
			}
			if err := writer.WriteField(fl.name, fl.value.Text); err != nil {
				return port.MultipartBody{}, fmt.Errorf("failed to write field %s: %w", fl.name, err)
			}
		case fileField:
			if len(fl.value.Files) == 0 {
				continue
			}
			if err := writeFilePart(writer, fl.name, fl.value.Files[0]); err != nil {
				return port.MultipartBody{}, err
			}
		}
	}

	if err := writer.Close(); err != nil {
		return port.MultipartBody{}, fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return port.MultipartBody{ContentType: writer.FormDataContentType(), Body: buf}, nil
}

func writeFilePart(writer *multipart.Writer, fieldName string, file File) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(fieldName), escapeQuotes(file.Name)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create file part %s: %w", fieldName, err)
	}
	if _, err := io.Copy(part, bytes.NewReader(file.Data)); err != nil {
		return fmt.Errorf("failed to write file part %s: %w", fieldName, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// SubmitFunc получает готовое multipart-тело.
type SubmitFunc func(ctx context.Context, body port.MultipartBody) error

// HandleSubmit валидирует форму и только при успехе вызывает submit.
// При ошибке валидации возвращается *ValidationError, submit не вызывается.
func (f *Form) HandleSubmit(ctx context.Context, submit SubmitFunc) error {
	if !f.Validate() {
		return f.ValidationError()
	}
	body, err := f.Multipart()
	if err != nil {
		return fmt.Errorf("form %s: failed to build request body: %w", f.name, err)
	}
	return submit(ctx, body)
}
