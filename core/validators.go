package core

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags
	notBlankTag  = "notblank"
	esLettersTag = "esletters"
	dniTag       = "dni8"
	phoneTag     = "phone9"
	emailTag     = "simplemail"
	cycleTag     = "cycle"
	creditsTag   = "credits"
	scoreTag     = "score"

	esLettersRegex = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúñÑ ]+$`)
	dniRegex       = regexp.MustCompile(`^[0-9]{8}$`)
	phoneRegex     = regexp.MustCompile(`^9[0-9]{8}$`)
	// the product's email rule; deliberately looser than RFC-strict `email`
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the spanish error messages for validation errors.
	_es := es.New()
	uni := ut.New(_es, _es)
	Translator, _ = uni.GetTranslator("es")
	_ = es_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = Validate.RegisterValidation(esLettersTag, regexValidation(esLettersRegex))
	_ = Validate.RegisterValidation(dniTag, regexValidation(dniRegex))
	_ = Validate.RegisterValidation(phoneTag, regexValidation(phoneRegex))
	_ = Validate.RegisterValidation(emailTag, regexValidation(emailRegex))
	_ = Validate.RegisterValidation(cycleTag, intRangeValidation(1, 10))
	_ = Validate.RegisterValidation(creditsTag, intRangeValidation(1, 5))
	_ = Validate.RegisterValidation(scoreTag, scoreValidation)

	registerCustomValidationsTranslations(
		notBlankTag, esLettersTag, dniTag, phoneTag, emailTag, cycleTag, creditsTag, scoreTag,
	)
}

// registerCustomValidationsTranslations registers error messages for custom validations.
// a validator.RegisterTranslationsFunc is required for registering the Translator,
// but it has already been registered as the default translation.
// so a noop func is passed to bypass this requirement.
func registerCustomValidationsTranslations(tags ...string) {
	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range tags {
		_ = Validate.RegisterTranslation(tag, Translator, registerFn, translateCustomValidationErrs)
	}
}

func translateCustomValidationErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fmt.Sprintf("El campo %s es obligatorio.", fe.Field())
	case esLettersTag:
		return fmt.Sprintf("El %s solo debe contener letras.", fe.Field())
	case dniTag:
		return "El DNI debe tener exactamente 8 números."
	case phoneTag:
		return "El teléfono debe tener 9 dígitos y comenzar con 9."
	case emailTag:
		return "Ingrese un correo válido."
	case cycleTag:
		return "El ciclo debe estar entre 1 y 10."
	case creditsTag:
		return "Los créditos deben estar entre 1 y 5."
	case scoreTag:
		return "La nota debe estar entre 0 y 20."
	default:
		return ""
	}
}

// FieldErrorsFrom flattens a validator error into ordered FieldErrors so all
// violated rules can be shown at once.
func FieldErrorsFrom(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Error: err.Error()}}
	}
	flds := make([]FieldError, 0, len(verrs))
	for _, verr := range verrs {
		flds = append(flds, FieldError{Field: verr.Field(), Error: verr.Translate(Translator)})
	}
	return flds
}

// Custom Validators

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func regexValidation(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func intRangeValidation(min, max int64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().Int()
		return val >= min && val <= max
	}
}

// scoreValidation checks a grade is within the 0-20 scale.
func scoreValidation(fl validator.FieldLevel) bool {
	val := fl.Field().Float()
	return val >= 0 && val <= 20
}
