package validators

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/goliatone/go-abideform/pkg/model"
)

// Default message formats. They double as catalog keys.
const (
	MsgInvalidEmail  = "Invalid email address."
	MsgInvalidInput  = "Invalid input."
	MsgRequired      = "This field is required."
	MsgLengthMin     = "Field must be at least %d characters long."
	MsgLengthMax     = "Field cannot be longer than %d characters."
	MsgLengthBetween = "Field must be between %d and %d characters long."
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		MsgInvalidEmail:  "Ungültige E-Mail-Adresse.",
		MsgInvalidInput:  "Ungültige Eingabe.",
		MsgRequired:      "Dieses Feld ist erforderlich.",
		MsgLengthMin:     "Das Feld muss mindestens %d Zeichen lang sein.",
		MsgLengthMax:     "Das Feld darf nicht länger als %d Zeichen sein.",
		MsgLengthBetween: "Das Feld muss zwischen %d und %d Zeichen lang sein.",
	},
	language.French: {
		MsgInvalidEmail:  "Adresse e-mail invalide.",
		MsgInvalidInput:  "Saisie invalide.",
		MsgRequired:      "Ce champ est obligatoire.",
		MsgLengthMin:     "Le champ doit contenir au moins %d caractères.",
		MsgLengthMax:     "Le champ ne peut pas contenir plus de %d caractères.",
		MsgLengthBetween: "Le champ doit contenir entre %d et %d caractères.",
	},
	language.Spanish: {
		MsgInvalidEmail:  "Dirección de correo electrónico no válida.",
		MsgInvalidInput:  "Entrada no válida.",
		MsgRequired:      "Este campo es obligatorio.",
		MsgLengthMin:     "El campo debe tener al menos %d caracteres.",
		MsgLengthMax:     "El campo no puede tener más de %d caracteres.",
		MsgLengthBetween: "El campo debe tener entre %d y %d caracteres.",
	},
}

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := builder.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return builder
}

// Locales lists the languages with bundled message translations besides the
// English defaults.
func Locales() []language.Tag {
	return messages.Languages()
}

type printerTranslator struct {
	printer *message.Printer
}

// NewTranslator returns a model.Translator backed by the bundled message
// catalog. Unknown locales fall back to the English defaults.
func NewTranslator(tag language.Tag) model.Translator {
	return printerTranslator{printer: message.NewPrinter(tag, message.Catalog(messages))}
}

// TranslatorFor parses a BCP 47 locale string, falling back to English when
// the string is empty or malformed.
func TranslatorFor(locale string) model.Translator {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return NewTranslator(tag)
}

func (t printerTranslator) Translate(format string, args ...any) string {
	return t.printer.Sprintf(format, args...)
}

var defaultTranslator = NewTranslator(language.English)

func translate(t model.Translator, format string, args ...any) string {
	if t == nil {
		t = defaultTranslator
	}
	return t.Translate(format, args...)
}
