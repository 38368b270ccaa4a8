package analytics

import (
	"strings"

	"retail-insight/models"
)

// brandEntry pairs the keywords for one manufacturer (Latin and localized
// script) with its canonical label. Order matters: a product name containing
// several keywords resolves to the first entry tested.
type brandEntry struct {
	keywords []string
	label    string
}

var brandTable = []brandEntry{
	{[]string{"lg", "樂金"}, "LG (樂金)"},
	{[]string{"samsung", "三星"}, "Samsung (三星)"},
	{[]string{"panasonic", "國際牌", "國際"}, "Panasonic (國際牌)"},
	{[]string{"hitachi", "日立"}, "Hitachi (日立)"},
	{[]string{"toshiba", "東芝"}, "Toshiba (東芝)"},
	{[]string{"sharp", "夏普"}, "Sharp (夏普)"},
	{[]string{"sony", "索尼"}, "Sony (索尼)"},
	{[]string{"daikin", "大金"}, "Daikin (大金)"},
	{[]string{"mitsubishi", "三菱"}, "Mitsubishi (三菱)"},
	{[]string{"sampo", "聲寶"}, "Sampo (聲寶)"},
	{[]string{"teco", "東元"}, "TECO (東元)"},
	{[]string{"tatung", "大同"}, "Tatung (大同)"},
	{[]string{"sanyo", "三洋"}, "Sanyo (三洋)"},
	{[]string{"whirlpool", "惠而浦"}, "Whirlpool (惠而浦)"},
	{[]string{"philips", "飛利浦"}, "Philips (飛利浦)"},
	{[]string{"electrolux", "伊萊克斯"}, "Electrolux (伊萊克斯)"},
	{[]string{"haier", "海爾"}, "Haier (海爾)"},
	{[]string{"hisense", "海信"}, "Hisense (海信)"},
	{[]string{"midea", "美的"}, "Midea (美的)"},
	{[]string{"dyson", "戴森"}, "Dyson (戴森)"},
}

// DetectBrand maps a product name to its canonical brand label. Every name
// maps to exactly one label; no keyword match yields models.BrandOther.
func DetectBrand(product string) string {
	name := strings.ToLower(product)
	for _, entry := range brandTable {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.label
			}
		}
	}
	return models.BrandOther
}
