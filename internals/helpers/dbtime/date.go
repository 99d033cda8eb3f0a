package dbtime

import "time"

const LayoutData = "2006-01-02"

// ParseData lê "YYYY-MM-DD" e normaliza para meia-noite UTC,
// que é a forma canônica gravada na coluna DATE.
func ParseData(s string) (time.Time, error) {
	return time.Parse(LayoutData, s)
}

// SomenteData trunca um time.Time para a data (meia-noite UTC).
func SomenteData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MesmaData compara só ano/mês/dia, ignorando hora e fuso.
func MesmaData(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
