package pdf

// Generator renders invoices and payslips. Company letterhead fields
// come from configuration at startup.
type Generator struct {
	companyName    string
	companyAddress string
	companyGSTIN   string
}

func NewGenerator(companyName, companyAddress, companyGSTIN string) *Generator {
	return &Generator{
		companyName:    companyName,
		companyAddress: companyAddress,
		companyGSTIN:   companyGSTIN,
	}
}
