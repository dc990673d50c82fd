package contact

type Request struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`

	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`

	// Zero coordinates mean "resolve for me": the service will call the
	// geocoder instead of persisting 0.0.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
