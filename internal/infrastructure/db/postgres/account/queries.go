package account

const (
	accountColumns = `id, uuid, name, email, password_hash, created_at, updated_at`

	SelectAccountByUUID = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE uuid = $1
	`
	SelectAccountByEmail = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE email = $1
	`
	ExistsAccountByEmail = `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)
	`
	InsertAccount = `
		INSERT INTO accounts (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + accountColumns + `
	`
	SelectIdByUUID    = `SELECT id FROM accounts WHERE uuid = $1::uuid`
	DeleteAccountByID = `
		DELETE FROM accounts WHERE id = $1
	`
)
