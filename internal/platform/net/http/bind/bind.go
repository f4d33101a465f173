// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"recordkeeper/internal/core/emailaddr"
	perr "recordkeeper/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerStrictEmail(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// registerStrictEmail wires the emailaddr predicate as the "strictemail" tag
// with the contractual "Invalid email format" message
func registerStrictEmail(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("strictemail", func(fl validator.FieldLevel) bool {
		return emailaddr.Valid(fl.Field().String())
	})
	_ = v.RegisterTranslation("strictemail", trans,
		func(ut ut.Translator) error {
			return ut.Add("strictemail", "Invalid email format", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T("strictemail")
			if err != nil {
				return "Invalid email format"
			}
			return t
		},
	)
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{
		MaxBytes:        1 << 20,
		DisallowUnknown: true,
	}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	if r.Body == nil {
		return zero, perr.JSONErrf("empty request body")
	}
	body := http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	defer func() { _, _ = io.Copy(io.Discard, body); _ = body.Close() }()

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var in T
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty request body")
		}
		return zero, perr.Wrapf(err, perr.ErrorCodeJSON, "malformed JSON")
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(in); err != nil {
		return zero, err
	}
	return in, nil
}

// Validate runs struct validation and maps the first failure to a
// field-tagged validation error
func Validate(in any) error {
	svc := Get()
	err := svc.Validator.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return perr.Wrap(err, perr.ErrorCodeValidation, "validation failed")
	}
	fe := verrs[0]
	return perr.Validationf(fe.Field(), "%s", fe.Translate(svc.Translator))
}
