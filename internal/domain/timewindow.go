package domain

import "time"

// TimeWindow é um intervalo fechado [Start, End] usado para filtrar pedidos
// pela data de criação. Ambas as extremidades são inclusivas.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// endOfDay retorna o mesmo dia calendário com a hora forçada para
// 23:59:59.999.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// DayWindow produz a janela de um único dia calendário. O início mantém o
// horário recebido; o fim é o mesmo dia às 23:59:59.999.
func DayWindow(date time.Time) TimeWindow {
	return TimeWindow{
		Start: date,
		End:   endOfDay(date),
	}
}

// MonthWindow produz a janela do mês calendário de referência: do primeiro
// dia às 00:00:00.000 até o último dia às 23:59:59.999. Anos bissextos e a
// variação de dias por mês ficam por conta da aritmética de datas da stdlib.
func MonthWindow(now time.Time) TimeWindow {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDay := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return TimeWindow{
		Start: start,
		End:   endOfDay(lastDay),
	}
}

// PreviousMonthWindow produz a janela do mês anterior ao mês de referência.
// Janeiro retrocede para dezembro do ano anterior.
func PreviousMonthWindow(now time.Time) TimeWindow {
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := firstOfCurrent.AddDate(0, -1, 0)
	return TimeWindow{
		Start: start,
		End:   endOfDay(firstOfCurrent.AddDate(0, 0, -1)),
	}
}

// Contains informa se o instante pertence à janela (extremidades inclusas).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Period formata o mês da janela como "YYYY-MM"; usado na composição das
// chaves de cache mensais.
func (w TimeWindow) Period() string {
	return w.Start.Format("2006-01")
}
