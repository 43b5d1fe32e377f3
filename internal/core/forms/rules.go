package forms

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Value - значение поля: текст или выбранные файлы
type Value struct {
	Text  string
	Files []File
}

// File - загруженный файл формы
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Собственные теги валидатора
const (
	tagMinWords     = "minwords"
	tagPhoneGE      = "phone_ge"
	tagFileRequired = "file_required"
	tagMaxFileSize  = "max_file_size"
	tagImageFiles   = "image_files"
)

var (
	validate = validator.New()

	// грузинский мобильный: 9 цифр, первая 5
	phoneGERe = regexp.MustCompile(`^5[0-9]{8}$`)
)

func init() {
	custom := map[string]validator.Func{
		tagMinWords:     validateMinWords,
		tagPhoneGE:      validatePhoneGE,
		tagFileRequired: validateFileRequired,
		tagMaxFileSize:  validateMaxFileSize,
		tagImageFiles:   validateImageFiles,
	}
	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic("forms: failed to register validation " + tag + ": " + err.Error())
		}
	}
}

func validateMinWords(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.Fields(fl.Field().String())) >= n
}

func validatePhoneGE(fl validator.FieldLevel) bool {
	return phoneGERe.MatchString(fl.Field().String())
}

func validateFileRequired(fl validator.FieldLevel) bool {
	field := fl.Field()
	return field.Kind() == reflect.Slice && field.Len() > 0
}

func validateMaxFileSize(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	for _, f := range filesOf(fl.Field()) {
		if len(f.Data) > limit {
			return false
		}
	}
	return true
}

func validateImageFiles(fl validator.FieldLevel) bool {
	for _, f := range filesOf(fl.Field()) {
		if !strings.HasPrefix(f.ContentType, "image/") {
			return false
		}
	}
	return true
}

func filesOf(field reflect.Value) []File {
	files, _ := field.Interface().([]File)
	return files
}

// Rule - одно правило валидации поля с сообщением для вывода рядом с полем.
// Проверка выполняется тегом validator, для Custom - предикатом.
type Rule struct {
	Name    string
	Message string

	tag   string
	files bool
	trim  bool
	check func(Value) bool
}

func (r Rule) passes(v Value) bool {
	if r.check != nil {
		return r.check(v)
	}
	if r.files {
		return validate.Var(v.Files, r.tag) == nil
	}
	text := v.Text
	if r.trim {
		text = strings.TrimSpace(text)
	}
	return validate.Var(text, r.tag) == nil
}

// Required - поле обязательно; строка из одних пробелов считается пустой.
func Required(message string) Rule {
	return Rule{Name: "required", Message: message, tag: "required", trim: true}
}

// MinLength проверяет длину в символах. Пустое значение оставлено правилу Required.
func MinLength(n int, message string) Rule {
	return Rule{Name: "minLength", Message: message, tag: "omitempty,min=" + strconv.Itoa(n), trim: true}
}

// Pattern проверяет непустое значение тегом validator, например "number" или "oneof=0 1".
// Некорректный тег - ошибка программиста, validator паникует при первой проверке.
func Pattern(tag, message string) Rule {
	return Rule{Name: "pattern", Message: message, tag: "omitempty," + tag}
}

// Numeric - неотрицательное число, допускается дробная часть.
func Numeric(message string) Rule {
	return Rule{Name: "numeric", Message: message, tag: "omitempty,numeric,excludesall=+-"}
}

// MinWords - минимум n слов, разделенных пробелами.
func MinWords(n int, message string) Rule {
	return Rule{Name: "minWords", Message: message, tag: tagMinWords + "=" + strconv.Itoa(n)}
}

func Contains(substr, message string) Rule {
	return Rule{Name: "contains", Message: message, tag: "contains=" + substr}
}

// Custom - произвольный предикат.
func Custom(name, message string, predicate func(Value) bool) Rule {
	return Rule{Name: name, Message: message, check: predicate}
}

func FileRequired(message string) Rule {
	return Rule{Name: "fileRequired", Message: message, tag: tagFileRequired, files: true}
}

// RuleMaxFileSize - имя правила MaxFileSize
const RuleMaxFileSize = "maxFileSize"

func MaxFileSize(limit int, message string) Rule {
	return Rule{Name: RuleMaxFileSize, Message: message, tag: tagMaxFileSize + "=" + strconv.Itoa(limit), files: true}
}

// ImageFile пропускает только файлы с типом image/*.
func ImageFile(message string) Rule {
	return Rule{Name: "imageFile", Message: message, tag: tagImageFiles, files: true}
}
