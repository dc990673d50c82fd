package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"

	// account
	RouteAccount = RouteApiV1 + "/account"

	// contacts
	RouteContacts   = RouteApiV1 + "/contacts"
	RouteContact    = RouteContacts + "/:contact_id"
	RouteContactCPF = RouteContacts + "/cpf/:cpf"

	// addresses (ViaCEP lookups)
	RouteAddresses     = RouteApiV1 + "/addresses"
	RouteAddressCEP    = RouteAddresses + "/cep/:cep"
	RouteAddressSearch = RouteAddresses + "/search"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
