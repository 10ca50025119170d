package models

// Stance labels
const (
	StanceFullList   = "Tüm Listemizi Yazar"
	StanceMostOfList = "Büyük Kısmı Yazar"
	StancePartial    = "Kısmen Yazar"
	StanceOpponent   = "Karşı Tarafı Destekler"
	StanceUndecided  = "Kararsızım"
)

// Allowed values for the select fields of the edit form. The leading empty
// option means "not set".
var (
	InstitutionOptions = []string{
		"", "Özel Sektör", "Dsi", "Karayolları", "Büyükşehir", "Vaski", "Projeci",
		"Yapı Denetimci", "İlçe Belediyeleri", "Müteahhit", "Yapsat", "Diğer",
	}
	History2024Options   = []string{"", "Sarı Liste", "Mavi Liste"}
	History2022Options   = []string{"", "Sarı Liste", "Mavi Liste", "Beyaz Liste"}
	StanceOptions        = []string{"", StanceFullList, StanceMostOfList, StancePartial, StanceOpponent, StanceUndecided}
	ContactMethodOptions = []string{"", "Kendim Görüştüm", "Arkadaşım/Akraba Aracılığı", "Tanımıyorum"}
	TransportOptions     = []string{"", "Kendisi Gelir", "Araç Gerekir", "İlçeden Gelecek", "Temsilcilikten Gelecek"}
)

// OptionIndex returns the position of value in options, or 0 (the empty
// option) when value is not a member.
func OptionIndex(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

// IsOption reports whether value is one of options.
func IsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
