package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"contacts-api/internal/domain/contact"
	"contacts-api/internal/interface/api/rest/dto/auth"
	contactDTO "contacts-api/internal/interface/api/rest/dto/contact"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var (
	cpfRe   = regexp.MustCompile(`^\d{11}$`)
	cepRe   = regexp.MustCompile(`^\d{8}$`)
	phoneRe = regexp.MustCompile(`^\d{10,11}$`)
	ufRe    = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// sortFields whitelists list ordering; anything else is a 400, never SQL.
var sortFields = map[string]struct{}{
	"name":       {},
	"cpf":        {},
	"city":       {},
	"created_at": {},
}

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 0, nil
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 0 {
		return 0, errors.New("page must be a non-negative integer")
	}
	return p, nil
}

func ValidateSize(size string) (int, error) {
	if size == "" {
		return contact.DefaultPageSize, nil
	}
	s, err := strconv.Atoi(size)
	if err != nil || s < 1 || s > contact.MaxPageSize {
		return 0, errors.New("size must be between 1 and 100")
	}
	return s, nil
}

// ValidateSort parses "field,direction" (e.g. "name,asc", "created_at,desc").
func ValidateSort(sort string) (field string, desc bool, err error) {
	if sort == "" {
		return "name", false, nil
	}

	parts := strings.SplitN(sort, ",", 2)
	field = strings.ToLower(strings.TrimSpace(parts[0]))
	if _, ok := sortFields[field]; !ok {
		return "", false, errors.New("sort field must be one of: name, cpf, city, created_at")
	}

	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "", "asc":
		case "desc":
			desc = true
		default:
			return "", false, errors.New("sort direction must be asc or desc")
		}
	}

	return field, desc, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ParseContactID(s string) (contact.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("contact_id must be a positive integer")
	}
	return contact.ID(id), nil
}

func IsCEP(s string) bool { return cepRe.MatchString(s) }

// ValidateContact checks field shape only; the CPF checksum and the
// per-account uniqueness live in the service.
func ValidateContact(r contactDTO.Request) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	cpf := strings.TrimSpace(r.CPF)
	phone := strings.TrimSpace(r.Phone)
	cep := strings.TrimSpace(r.CEP)
	street := strings.TrimSpace(r.Street)
	number := strings.TrimSpace(r.Number)
	neighborhood := strings.TrimSpace(r.Neighborhood)
	city := strings.TrimSpace(r.City)
	state := strings.TrimSpace(r.State)

	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 128 {
		errs["name"] = "name length must be 2–128 characters"
	}

	if cpf == "" {
		errs["cpf"] = "cpf is required"
	} else if !cpfRe.MatchString(cpf) {
		errs["cpf"] = "cpf must contain exactly 11 digits"
	}

	if phone == "" {
		errs["phone"] = "phone is required"
	} else if !phoneRe.MatchString(phone) {
		errs["phone"] = "phone must contain 10 or 11 digits including area code"
	}

	if cep == "" {
		errs["cep"] = "cep is required"
	} else if !cepRe.MatchString(cep) {
		errs["cep"] = "cep must contain exactly 8 digits"
	}

	if street == "" {
		errs["street"] = "street is required"
	}
	if number == "" {
		errs["number"] = "number is required"
	}
	if neighborhood == "" {
		errs["neighborhood"] = "neighborhood is required"
	}
	if city == "" {
		errs["city"] = "city is required"
	}

	if state == "" {
		errs["state"] = "state is required"
	} else if !ufRe.MatchString(state) {
		errs["state"] = "state must be a 2-letter UF code"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	email := strings.ToLower(strings.TrimSpace(r.Email))

	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 128 {
		errs["name"] = "name length must be 2–128 characters"
	} else if !isHumanName(name) {
		errs["name"] = "allowed characters: letters, space, '-', '''"
	}

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if msg := validatePassword(r.Password); msg != "" {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if msg := validatePassword(r.Password); msg != "" {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validatePassword(password string) string {
	if strings.TrimSpace(password) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8–72 characters"
	}
	return ""
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
