package models

// KnowledgeKey names the entity a server knowledge value belongs to. Each
// entity keeps exactly one knowledge record in the local cache.
type KnowledgeKey string

const (
	KnowledgePayees       KnowledgeKey = "payees"
	KnowledgeTransactions KnowledgeKey = "transactions"
)

// String implements fmt.Stringer.
func (k KnowledgeKey) String() string {
	return string(k)
}
