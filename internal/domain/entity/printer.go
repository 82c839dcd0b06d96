package entity

// Printer representa um modelo de impressora para fins de compatibilidade.
// Não é um Product: um modelo pode constar aqui mesmo sem estar à venda.
type Printer struct {
	ID        string
	ModelName string // único (ex.: "Epson EcoTank L3250")
	BrandID   string
}

// Compatibility é a linha da relação N:N cartucho/toner <-> impressora.
type Compatibility struct {
	CartridgeID string // FK para Product
	PrinterID   string // FK para Printer
}
