package auditable

const DefaultQuoter = QuoteRuner('`')

type (
	Quoter interface {
		// QuoteChar quotes char for field name to avoid SQL parsing exceptions by using a reserved word as a field name
		QuoteChar() rune
	}

	QuoteRuner rune
)

func (this QuoteRuner) QuoteChar() rune {
	return rune(this)
}

// Quote quotes field name to avoid SQL parsing exceptions by using a reserved word as a field name
func Quote(q Quoter, key string) string {
	qc := string(q.QuoteChar())
	return qc + key + qc
}
