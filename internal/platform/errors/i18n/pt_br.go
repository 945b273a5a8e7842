package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeUnknown:            "Ocorreu um erro inesperado",
		CodeIconNotFound:       `O ícone "{{.Icon}}" não faz parte do conjunto "{{.Set}}"`,
		CodeIconIDRequired:     "O ID do ícone é obrigatório",
		CodeIconSetNotFound:    `O conjunto de ícones "{{.Set}}" não existe`,
		CodeIconSetRequired:    "O conjunto de ícones é obrigatório",
		CodeIconSetEmpty:       `O conjunto de ícones "{{.Set}}" está vazio`,
		CodeEntityIDRequired:   "O ID da entidade é obrigatório para escolher um ícone padrão",
		CodeEntityTypeRequired: "O tipo da entidade é obrigatório para escolher um ícone padrão",
		CodeIconInvalid:        "Referência de ícone inválida",
	},
}
