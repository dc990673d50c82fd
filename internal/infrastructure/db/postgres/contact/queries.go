package contact

// SelectContactsByOwner and SearchContactsByOwner carry an ORDER BY
// placeholder: pgx cannot bind identifiers, so the column and direction are
// interpolated from the whitelist in repository.go.
const (
	contactColumns = `id, account_id, name, cpf, phone, cep, street, number, complement, neighborhood, city, state, latitude, longitude, created_at, updated_at`

	SelectContactsByOwner = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE account_id = $1
		ORDER BY %s
		LIMIT $2 OFFSET $3
	`
	CountContactsByOwner = `
		SELECT count(*) FROM contacts WHERE account_id = $1
	`
	SearchContactsByOwner = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE account_id = $1
		  AND (name ILIKE '%%' || $2 || '%%' OR cpf LIKE '%%' || $2 || '%%')
		ORDER BY %s
		LIMIT $3 OFFSET $4
	`
	CountSearchContactsByOwner = `
		SELECT count(*)
		FROM contacts
		WHERE account_id = $1
		  AND (name ILIKE '%' || $2 || '%' OR cpf LIKE '%' || $2 || '%')
	`
	SelectContactByID = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE id = $1
	`
	ExistsContactByOwnerAndCPF = `
		SELECT EXISTS (
			SELECT 1 FROM contacts WHERE account_id = $1 AND cpf = $2
		)
	`
	ExistsContactByOwnerAndCPFExcluding = `
		SELECT EXISTS (
			SELECT 1 FROM contacts WHERE account_id = $1 AND cpf = $2 AND id <> $3
		)
	`
	InsertContact = `
		INSERT INTO contacts (account_id, name, cpf, phone, cep, street, number, complement, neighborhood, city, state, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + contactColumns + `
	`
	UpdateContactByID = `
		UPDATE contacts
		SET name = $1,
		    cpf = $2,
		    phone = $3,
		    cep = $4,
		    street = $5,
		    number = $6,
		    complement = $7,
		    neighborhood = $8,
		    city = $9,
		    state = $10,
		    latitude = $11,
		    longitude = $12,
		    updated_at = now()
		WHERE id = $13
		RETURNING ` + contactColumns + `
	`
	DeleteContactByID = `
		DELETE FROM contacts WHERE id = $1
	`
	DeleteContactsByOwner = `
		DELETE FROM contacts WHERE account_id = $1
	`
)
