package entity

// Chaves conhecidas de StoreConfig.
const ConfigKeyBanner = "banner"

// StoreConfig é o armazenamento chave -> valor de configuração da loja
// (hoje apenas o banner do site). Uma linha por chave.
type StoreConfig struct {
	Key      string
	Value    string
	IsActive bool
}
