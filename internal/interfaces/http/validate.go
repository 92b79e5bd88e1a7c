package http

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
)

var (
	plaqueRe     = regexp.MustCompile(`^[A-Z]{2}-[0-9]{3}-[A-Z]{2}$`)
	codePostalRe = regexp.MustCompile(`^[0-9]{5}$`)
	telephoneRe  = regexp.MustCompile(`^0[1-9][0-9]{8}$`)
)

var validate = newValidator()

// newValidator construit le validateur et enregistre les formats français :
// plaque d'immatriculation SIV, code postal, numéro de téléphone national.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("plaque", func(fl validator.FieldLevel) bool {
		return plaqueRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("codepostal", func(fl validator.FieldLevel) bool {
		return codePostalRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("telfr", func(fl validator.FieldLevel) bool {
		return telephoneRe.MatchString(fl.Field().String())
	})
	return v
}

// parseBody décode le JSON de la requête puis valide la structure. Toute
// erreur en sort en *dto.FieldErrors, donc en 400 avec détail par champ.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &dto.FieldErrors{Messages: []string{"corps de requête JSON invalide"}}
	}
	return validateStruct(out)
}

// validateStruct applique les tags validate et traduit chaque violation en
// message lisible.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return &dto.FieldErrors{Messages: messages}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s est requis", field)
	case "email":
		return fmt.Sprintf("%s doit être un email valide", field)
	case "min":
		return fmt.Sprintf("%s doit faire au moins %s caractères", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s doit faire au plus %s caractères", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s doit être l'une des valeurs: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s doit être supérieur ou égal à %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s doit être inférieur ou égal à %s", field, fe.Param())
	case "plaque":
		return fmt.Sprintf("%s doit suivre le format AA-123-AA", field)
	case "codepostal":
		return fmt.Sprintf("%s doit être un code postal à 5 chiffres", field)
	case "telfr":
		return fmt.Sprintf("%s doit être un numéro à 10 chiffres commençant par 0", field)
	case "dive":
		return fmt.Sprintf("%s contient un élément invalide", field)
	default:
		return fmt.Sprintf("%s est invalide (%s)", field, fe.Tag())
	}
}
