// Package calendar формирует ссылки "добавить в календарь" и файл .ics для подтверждённой записи.
package calendar

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// CompactUTCLayout формат дат в .ics и ссылке Google Calendar
const CompactUTCLayout = "20060102T150405Z"

const (
	googleCalendarURL  = "https://calendar.google.com/calendar/render"
	outlookCalendarURL = "https://outlook.live.com/calendar/0/deeplink/compose"
	prodID             = "-//SMC//Profile Service//EN"
	maxLineOctets      = 75
	crlf               = "\r\n"
)

// Event событие для экспорта
type Event struct {
	UID         string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	// Stamp время формирования (DTSTAMP); если не задано, берётся Start
	Stamp time.Time
}

// GoogleCalendarURL ссылка на создание события в Google Calendar
func GoogleCalendarURL(e Event) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", compact(e.Start)+"/"+compact(e.End))
	q.Set("details", e.Description)
	q.Set("location", e.Location)
	return googleCalendarURL + "?" + q.Encode()
}

// OutlookCalendarURL ссылка на создание события в Outlook
func OutlookCalendarURL(e Event) string {
	q := url.Values{}
	q.Set("path", "/calendar/action/compose")
	q.Set("rru", "addevent")
	q.Set("subject", e.Title)
	q.Set("startdt", e.Start.UTC().Format(time.RFC3339))
	q.Set("enddt", e.End.UTC().Format(time.RFC3339))
	q.Set("body", e.Description)
	q.Set("location", e.Location)
	return outlookCalendarURL + "?" + q.Encode()
}

// ICS текст файла .ics с одним VEVENT. Строки разделены CRLF,
// длинные строки свёрнуты по 75 октетов.
func ICS(e Event) string {
	stamp := e.Stamp
	if stamp.IsZero() {
		stamp = e.Start
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + escapeText(e.UID),
		"DTSTAMP:" + compact(stamp),
		"DTSTART:" + compact(e.Start),
		"DTEND:" + compact(e.End),
		"SUMMARY:" + escapeText(e.Title),
		"DESCRIPTION:" + escapeText(e.Description),
		"LOCATION:" + escapeText(e.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(fold(line))
		b.WriteString(crlf)
	}
	return b.String()
}

func compact(t time.Time) string {
	return t.UTC().Format(CompactUTCLayout)
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// escapeText экранирует значение TEXT (RFC 5545, 3.3.11)
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// fold переносит строку длиннее 75 октетов: продолжение начинается с пробела.
// Разрыв не попадает внутрь многобайтового символа.
func fold(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}

	var b strings.Builder
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString(crlf + " ")
		line = line[cut:]
		// пробел в начале строки продолжения тоже считается
		limit = maxLineOctets - 1
	}
	b.WriteString(line)
	return b.String()
}
