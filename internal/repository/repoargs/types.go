package repoargs

type RepositoryName string

const (
	CustomerRepoName    RepositoryName = "customer"
	AccountRepoName     RepositoryName = "account"
	TransactionRepoName RepositoryName = "transaction"
)
