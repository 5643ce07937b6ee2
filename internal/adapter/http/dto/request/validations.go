package request

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"assignment_ledger/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedValidator = errors.New("gin binding validator is not go-playground/validator")

	translator ut.Translator
)

// custom binding tags
const (
	notBlankTag           = "not_blank"
	assignmentKindTag     = "assignment_kind"
	selectionModeTag      = "selection_mode"
	validityTypeTag       = "validity_type"
	termApplicabilityTag  = "term_applicability_type"
	disableEffectTag      = "disable_effect"
	receptionChannelTag   = "reception_channel"
	decimalPositiveTag    = "decimal_positive"
	decimalNonNegativeTag = "decimal_non_negative"
)

// RegisterBindings installs the ledger validations on gin's default validator.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrUnsupportedValidator
	}
	return RegisterValidations(v)
}

func RegisterValidations(v *validator.Validate) error {
	// Use JSON tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal is validated through its string form.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validations := map[string]validator.Func{
		notBlankTag:           notBlank,
		assignmentKindTag:     enumValidation(func(s string) bool { return entities.AssignmentKind(s).Valid() }),
		selectionModeTag:      enumValidation(func(s string) bool { return entities.SelectionMode(s).Valid() }),
		validityTypeTag:       enumValidation(func(s string) bool { return entities.ValidityType(s).Valid() }),
		termApplicabilityTag:  enumValidation(func(s string) bool { return entities.TermApplicabilityType(s).Valid() }),
		disableEffectTag:      enumValidation(func(s string) bool { return entities.DisableEffect(s).Valid() }),
		receptionChannelTag:   enumValidation(func(s string) bool { return entities.ReceptionChannel(s).Valid() }),
		decimalPositiveTag:    decimalValidation(func(d decimal.Decimal) bool { return d.IsPositive() }),
		decimalNonNegativeTag: decimalValidation(func(d decimal.Decimal) bool { return !d.IsNegative() }),
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return registerTranslations(v, validations)
}

func registerTranslations(v *validator.Validate, custom map[string]validator.Func) error {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	// The default translations are already registered, so a noop
	// RegisterTranslationsFunc is enough for the custom tags.
	registerFn := func(ut.Translator) error { return nil }
	for tag := range custom {
		if err := v.RegisterTranslation(tag, trans, registerFn, translateCustomTag); err != nil {
			return err
		}
	}
	translator = trans
	return nil
}

func translateCustomTag(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case decimalPositiveTag:
		return fe.Field() + " must be a positive amount"
	case decimalNonNegativeTag:
		return fe.Field() + " cannot be negative"
	default:
		return fe.Field() + " has an unsupported value"
	}
}

// Describe flattens a binding error into "field: message" pairs for logs.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if translator == nil || !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Namespace()+": "+fe.Translate(translator))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func enumValidation(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}
}

func decimalValidation(accept func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return accept(d)
	}
}
