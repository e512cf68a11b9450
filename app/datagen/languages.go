package datagen

// Language is one UI language option. Exactly one row is the default.
type Language struct {
	LangCode     string `json:"lang_code"`
	LanguageName string `json:"language_name"`
	IsDefault    bool   `json:"is_default"`
}

var languageColumns = []Column{
	{Name: "lang_code", Kind: KindString},
	{Name: "language_name", Kind: KindString},
	{Name: "is_default", Kind: KindBool},
}

func buildLanguages() []Language {
	return []Language{
		{LangCode: "en", LanguageName: "English", IsDefault: true},
		{LangCode: "hi", LanguageName: "Hindi", IsDefault: false},
		{LangCode: "es", LanguageName: "Spanish", IsDefault: false},
	}
}

func languagesTable(languages []Language) *Table {
	t := newTable(TableLanguages, languageColumns, len(languages))
	for _, l := range languages {
		t.appendRow(Row{l.LangCode, l.LanguageName, l.IsDefault})
	}
	return t
}
