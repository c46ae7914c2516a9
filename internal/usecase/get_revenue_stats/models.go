package get_revenue_stats

// Response итоги выручки по отчетным окнам
// Все суммы - целые центы; плавающая точка в деньгах не используется
type Response struct {
	TodayCents   int64 // Сегодня (календарный день)
	Last7Cents   int64 // Последние 7 дней, включая сегодня
	MonthCents   int64 // Текущий календарный месяц
	AllTimeCents int64 // За все время
}
