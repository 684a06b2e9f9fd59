// Package i18n traduce las claves de texto del dashboard (en, ar, fr) y
// formatea números según el idioma. Se apoya en golang.org/x/text.
package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Claves de texto del dashboard.
const (
	KeyTitle            = "title"
	KeyAllTime          = "allTime"
	KeyLast30Days       = "last30Days"
	KeyLast7Days        = "last7Days"
	KeyToday            = "today"
	KeyTotalSales       = "totalSales"
	KeyPureProfit       = "pureProfit"
	KeyTransactionCount = "transactionsCount"
	KeyItemsSold        = "itemsSold"
	KeyTopProducts      = "topProducts"
	KeySalesByCategory  = "salesByCategory"
	KeySalesByUser      = "salesByUser"
	KeyDailyHighlights  = "dailyHighlights"
	KeyNoData           = "noData"
	KeyBestDay          = "bestDay"
	KeyUnknownUser      = "unknownUser"
	KeyUncategorized    = "uncategorized"
	KeyInventoryHealth  = "inventoryHealth"
	KeyLowStock         = "lowStock"
	KeyOutOfStock       = "outOfStock"
	KeyRecentActivity   = "recentActivity"
	KeyStock            = "stock"
	KeyClientDebts      = "clientDebts"
	KeySupplierDebts    = "supplierDebts"
	KeyPartialData      = "partialData"
)

// supported el primero es el idioma por defecto del matcher.
var supported = []language.Tag{language.English, language.Arabic, language.French}

var matcher = language.NewMatcher(supported)

// Locale idioma resuelto para una petición.
type Locale struct {
	Tag  language.Tag
	Code string // "en", "ar" o "fr"
}

// English locale por defecto.
var English = Locale{Tag: language.English, Code: "en"}

// Match elige el idioma soportado más cercano a las preferencias dadas, en orden.
// Cada preferencia puede ser un código ("fr") o una cabecera Accept-Language completa.
// Las preferencias vacías o inválidas se ignoran; sin coincidencias devuelve English.
func Match(preferences ...string) Locale {
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := matcher.Match(tags...)
		if conf == language.No {
			continue
		}
		tag := supported[idx]
		base, _ := tag.Base()
		return Locale{Tag: tag, Code: base.String()}
	}
	return English
}

// T traduce una clave. Si falta en el idioma se usa inglés, y si tampoco existe, la clave.
func (l Locale) T(key string) string {
	if v, ok := messages[l.Code][key]; ok {
		return v
	}
	if v, ok := messages["en"][key]; ok {
		return v
	}
	return key
}

// WeekdayNames tabla de días indexada por time.Weekday.
func (l Locale) WeekdayNames() [7]string {
	if w, ok := weekdays[l.Code]; ok {
		return w
	}
	return weekdays["en"]
}

// RTL indica si el idioma se escribe de derecha a izquierda.
func (l Locale) RTL() bool { return l.Code == "ar" }

// printer formatea números. En idiomas RTL se usan dígitos latinos y separadores
// en inglés: las fuentes del PDF no tienen glifos árabe-índicos.
func (l Locale) printer() *message.Printer {
	if l.RTL() {
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(l.Tag)
}

// FormatMoney monto con dos decimales y separadores de miles del idioma.
func (l Locale) FormatMoney(v decimal.Decimal) string {
	return l.printer().Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// FormatInt entero con separadores de miles del idioma.
func (l Locale) FormatInt(n int) string {
	return l.printer().Sprintf("%d", n)
}

// FormatPercent porcentaje con un decimal.
func (l Locale) FormatPercent(v decimal.Decimal) string {
	return l.printer().Sprintf("%.1f%%", v.Round(1).InexactFloat64())
}
