package render

import "strings"

const defaultLang = "kk"

// Month names as the templates print them: full for the date line,
// short for the calendar header.
var monthsKK = [12]string{
	"Қаңтар", "Ақпан", "Наурыз", "Сәуір", "Мамыр", "Маусым",
	"Шілде", "Тамыз", "Қыркүйек", "Қазан", "Қараша", "Желтоқсан",
}

var monthsRU = [12]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

var monthsShortKK = [12]string{
	"Қаң", "Ақп", "Нау", "Сәу", "Мам", "Мау",
	"Шіл", "Там", "Қыр", "Қаз", "Қар", "Жел",
}

var monthsShortRU = [12]string{
	"Янв", "Фев", "Мар", "Апр", "Май", "Июн",
	"Июл", "Авг", "Сен", "Окт", "Ноя", "Дек",
}

// Fixed phrase table. Case- and punctuation-sensitive; phrases the
// template does not contain are simply not found. No target phrase
// contains a source phrase, so running the pass twice changes nothing.
var phrasesRU = [][2]string{
	{"ҚҰРМЕТТІ АҒАЙЫН-ТУЫС, ҚҰДА-ЖЕКЖАТ, ДОС-ЖАРАН!", "ДОРОГИЕ РОДНЫЕ И БЛИЗКИЕ, СВАТЫ И ДРУЗЬЯ!"},
	{"Сізді тойымызға шақырамыз", "Приглашаем вас на наше торжество"},
	{"Тойымыздың уақыты:", "Время нашего торжества:"},
	{"Той өтетін орын", "Место проведения"},
	{"КАРТА АРҚЫЛЫ АШУ", "ОТКРЫТЬ НА КАРТЕ"},
	{"Той иелері", "Хозяева торжества"},
	{"Сіз келесіз бе?", "Вы придёте?"},
	{"Есіміңіз", "Ваше имя"},
	{"Телефон нөміріңіз", "Ваш номер телефона"},
	{"Қонақтар саны", "Количество гостей"},
	{"Қосымша тілек", "Пожелание"},
	{"Жауап жіберу", "Отправить ответ"},
	{"Рақмет! Жауабыңыз қабылданды", "Спасибо! Ваш ответ принят"},
	{"жылы", "года"},
	{"айының", "месяца"},
	{"күні", "числа"},
	{"сағат", "в"},
}

// Localize rewrites the fixed phrase dictionary and month names for the
// target language. The default language is a no-op, as is any language
// without a table. Single replacer pass, so already-translated text is
// never translated twice.
func Localize(html, lang string) string {
	if lang == "" || lang == defaultLang || lang != "ru" {
		return html
	}

	pairs := make([]string, 0, 2*(len(phrasesRU)+2*len(monthsKK)))
	for _, p := range phrasesRU {
		pairs = append(pairs, p[0], p[1])
	}
	for i := range monthsKK {
		pairs = append(pairs, monthsKK[i], monthsRU[i])
		pairs = append(pairs, monthsShortKK[i], monthsShortRU[i])
	}
	return strings.NewReplacer(pairs...).Replace(html)
}
