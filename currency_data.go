package money

import "strings"

// currencyInfo holds the ISO 4217 metadata and the locale defaults for
// a single currency.
// Empty presentation fields fall back to the package defaults when a
// [Currency] is constructed from the table.
type currencyInfo struct {
	code        string
	num         string
	name        string
	symbol      string
	minorSymbol string
	scale       int
	thousandSep string
	decimalSep  string
	countries   []string
}

// isoCurrencies lists the currencies known to this package, sorted by
// alphabetic code. Scales, numeric codes and names follow ISO 4217.
var isoCurrencies = []currencyInfo{
	{code: "AED", num: "784", name: "United Arab Emirates dirham", symbol: "د.إ", minorSymbol: "fils", scale: 2, countries: []string{"United Arab Emirates"}},
	{code: "ARS", num: "032", name: "Argentine peso", symbol: "$", minorSymbol: "centavo", scale: 2, thousandSep: ".", decimalSep: ",", countries: []string{"Argentina"}},
	{code: "AUD", num: "036", name: "Australian dollar", symbol: "$", minorSymbol: "c", scale: 2, countries: []string{"Australia"}},
	{code: "BHD", num: "048", name: "Bahraini dinar", symbol: ".د.ب", minorSymbol: "fils", scale: 3, countries: []string{"Bahrain"}},
	{code: "BRL", num: "986", name: "Brazilian real", symbol: "R$", minorSymbol: "centavo", scale: 2, thousandSep: ".", decimalSep: ",", countries: []string{"Brazil"}},
	{code: "CAD", num: "124", name: "Canadian dollar", symbol: "$", minorSymbol: "¢", scale: 2, countries: []string{"Canada"}},
	{code: "CHF", num: "756", name: "Swiss franc", symbol: "Fr.", minorSymbol: "Rp.", scale: 2, countries: []string{"Switzerland", "Liechtenstein"}},
	{code: "CLP", num: "152", name: "Chilean peso", symbol: "$", scale: 0, thousandSep: ".", decimalSep: ",", countries: []string{"Chile"}},
	{code: "CNY", num: "156", name: "Renminbi", symbol: "¥", minorSymbol: "fen", scale: 2, countries: []string{"China"}},
	{code: "COP", num: "170", name: "Colombian peso", symbol: "$", minorSymbol: "centavo", scale: 2, thousandSep: ".", decimalSep: ",", countries: []string{"Colombia"}},
	{code: "CZK", num: "203", name: "Czech koruna", symbol: "Kč", minorSymbol: "haléř", scale: 2, countries: []string{"Czechia"}},
	{code: "DKK", num: "208", name: "Danish krone", symbol: "kr", minorSymbol: "øre", scale: 2, thousandSep: ".", decimalSep: ",", countries: []string{"Denmark"}},
	{code: "EGP", num: "818", name: "Egyptian pound", symbol: "E£", minorSymbol: "piastre", scale: 2, countries: []string{"Egypt"}},
	{code: "EUR", num: "978", name: "Euro", symbol: "€", minorSymbol: "c", scale: 2, thousandSep: ".", decimalSep: ",", countries: []string{"Germany", "France", "Italy", "Spain", "Netherlands"}},
	{code: "GBP", num: "826", name: "Pound sterling", symbol: "£", minorSymbol: "p", scale: 2, countries: []string{"United Kingdom"}},
	{code: "HKD", num: "344", name: "Hong Kong dollar", symbol: "HK$", minorSymbol: "¢", scale: 2, countries: []string{"Hong Kong"}},
	{code: "HUF", num: "348", name: "Hungarian forint", symbol: "Ft", minorSymbol: "fillér", scale: 2, countries: []string{"Hungary"}},
	{code: "IDR", num: "360", name: "Indonesian rupiah", symbol: "Rp", minorSymbol: "sen", scale: 2, thousandSep: ".", decimalSep: ",", countries: []string{"Indonesia"}},
	{code: "ILS", num: "376", name: "Israeli new shekel", symbol: "₪", minorSymbol: "agora", scale: 2, countries: []string{"Israel"}},
	{code: "INR", num: "356", name: "Indian rupee", symbol: "₹", minorSymbol: "paisa", scale: 2, countries: []string{"India"}},
	{code: "IQD", num: "368", name: "Iraqi dinar", symbol: "ع.د", minorSymbol: "fils", scale: 3, countries: []string{"Iraq"}},
	{code: "ISK", num: "352", name: "Icelandic króna", symbol: "kr", scale: 0, thousandSep: ".", decimalSep: ",", countries: []string{"Iceland"}},
	{code: "JOD", num: "400", name: "Jordanian dinar", symbol: "د.ا", minorSymbol: "fils", scale: 3, countries: []string{"Jordan"}},
	{code: "JPY", num: "392", name: "Japanese yen", symbol: "¥", minorSymbol: "sen", scale: 0, countries: []string{"Japan"}},
	{code: "KES", num: "404", name: "Kenyan shilling", symbol: "Sh", minorSymbol: "cent", scale: 2, countries: []string{"Kenya"}},
	{code: "KRW", num: "410", name: "South Korean won", symbol: "₩", scale: 0, countries: []string{"South Korea"}},
	{code: "KWD", num: "414", name: "Kuwaiti dinar", symbol: "د.ك", minorSymbol: "fils", scale: 3, countries: []string{"Kuwait"}},
	{code: "MAD", num: "504", name: "Moroccan dirham", symbol: "د.م.", minorSymbol: "centime", scale: 2, countries: []string{"Morocco"}},
	{code: "MXN", num: "484", name: "Mexican peso", symbol: "$", minorSymbol: "¢", scale: 2, countries: []string{"Mexico"}},
	{code: "MYR", num: "458", name: "Malaysian ringgit", symbol: "RM", minorSymbol: "sen", scale: 2, countries: []string{"Malaysia"}},
	{code: "NGN", num: "566", name: "Nigerian naira", symbol: "₦", minorSymbol: "kobo", scale: 2, countries: []string{"Nigeria"}},
	{code: "NOK", num: "578", name: "Norwegian krone", symbol: "kr", minorSymbol: "øre", scale: 2, countries: []string{"Norway"}},
	{code: "NZD", num: "554", name: "New Zealand dollar", symbol: "$", minorSymbol: "c", scale: 2, countries: []string{"New Zealand"}},
	{code: "OMR", num: "512", name: "Omani rial", symbol: "ر.ع.", minorSymbol: "baisa", scale: 3, countries: []string{"Oman"}},
	{code: "PEN", num: "604", name: "Peruvian sol", symbol: "S/", minorSymbol: "céntimo", scale: 2, countries: []string{"Peru"}},
	{code: "PHP", num: "608", name: "Philippine peso", symbol: "₱", minorSymbol: "sentimo", scale: 2, countries: []string{"Philippines"}},
	{code: "PLN", num: "985", name: "Polish złoty", symbol: "zł", minorSymbol: "grosz", scale: 2, countries: []string{"Poland"}},
	{code: "QAR", num: "634", name: "Qatari riyal", symbol: "ر.ق", minorSymbol: "dirham", scale: 2, countries: []string{"Qatar"}},
	{code: "RON", num: "946", name: "Romanian leu", symbol: "lei", minorSymbol: "ban", scale: 2, countries: []string{"Romania"}},
	{code: "RUB", num: "643", name: "Russian ruble", symbol: "₽", minorSymbol: "kopeck", scale: 2, countries: []string{"Russia"}},
	{code: "SAR", num: "682", name: "Saudi riyal", symbol: "ر.س", minorSymbol: "halala", scale: 2, countries: []string{"Saudi Arabia"}},
	{code: "SEK", num: "752", name: "Swedish krona", symbol: "kr", minorSymbol: "öre", scale: 2, countries: []string{"Sweden"}},
	{code: "SGD", num: "702", name: "Singapore dollar", symbol: "$", minorSymbol: "¢", scale: 2, countries: []string{"Singapore"}},
	{code: "THB", num: "764", name: "Thai baht", symbol: "฿", minorSymbol: "satang", scale: 2, countries: []string{"Thailand"}},
	{code: "TRY", num: "949", name: "Turkish lira", symbol: "₺", minorSymbol: "kuruş", scale: 2, thousandSep: ".", decimalSep: ",", countries: []string{"Turkey"}},
	{code: "TWD", num: "901", name: "New Taiwan dollar", symbol: "NT$", scale: 2, countries: []string{"Taiwan"}},
	{code: "UAH", num: "980", name: "Ukrainian hryvnia", symbol: "₴", minorSymbol: "kopiyka", scale: 2, countries: []string{"Ukraine"}},
	{code: "USD", num: "840", name: "United States dollar", symbol: "$", minorSymbol: "¢", scale: 2, countries: []string{"United States"}},
	{code: "VND", num: "704", name: "Vietnamese đồng", symbol: "₫", scale: 0, thousandSep: ".", decimalSep: ",", countries: []string{"Vietnam"}},
	{code: "XXX", num: "999", name: "No currency", symbol: "¤", scale: 0},
	{code: "ZAR", num: "710", name: "South African rand", symbol: "R", minorSymbol: "¢", scale: 2, countries: []string{"South Africa"}},
}

// currLookup resolves upper-case and lower-case alphabetic codes and
// 3-digit numeric codes to table entries.
var currLookup = make(map[string]*currencyInfo, 3*len(isoCurrencies))

func init() {
	for i := range isoCurrencies {
		inf := &isoCurrencies[i]
		currLookup[inf.code] = inf
		currLookup[strings.ToLower(inf.code)] = inf
		if inf.num != "" {
			currLookup[inf.num] = inf
		}
	}
}
