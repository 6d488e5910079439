package repoargs

type CreateCustomer struct {
	FullName   string
	NationalID string
	Phone      string
	Email      string
}

type UpdateCustomer struct {
	FullName   string
	NationalID string
	Phone      string
	Email      string
}
