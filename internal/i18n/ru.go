package i18n

var ru = map[string]string{
	"gatekeeper.clarification.request_type": "Выбери тип запроса: оценка возможности или решение проблемы.",
	"gatekeeper.clarification.project_type": "Выбери тип проекта: офлайн (физический) или онлайн (цифровой / удалённый).",
	"gatekeeper.clarification.idea":         "Уточни идею: что именно запускаем / проверяем?",
	"gatekeeper.clarification.goal":         "Сформулируй цель измеримо: метрика + срок.",
	"gatekeeper.clarification.context":      "Добавь контекст: почему сейчас, что даёт основание (спрос/сезонность/ресурсы/локация).",
	"gatekeeper.clarification.problem":      "Опиши проблему конкретно: что не работает, где потери, 1-2 примера.",
	"gatekeeper.clarification.region.country": "Укажи страну (обязательно).",
	"gatekeeper.clarification.region.region":  "Укажи регион/область (обязательно).",
	"gatekeeper.clarification.region.city":    "Укажи город (обязателен для офлайн и производственных проектов).",
	"gatekeeper.clarification.capital":        "Укажи капитал: число/диапазон/100k (например: '100000', 'до 200000', '100k').",
	"gatekeeper.clarification.time_horizon":   "Укажи горизонт: 2 недели / 1 месяц / 6 месяцев.",
	"gatekeeper.clarification.responsibility": "Подтверди ответственность чекбоксом - без этого запуск запрещён.",
	"gatekeeper.clarification.legality":       "Уточни формулировки: кейс должен быть легальным. Убери любые намёки на обход закона.",
	"gatekeeper.clarification.reality":        "Сними нереалистичные ожидания: цель должна быть достижима в срок и с ресурсами.",
	"gatekeeper.clarification.generic":        "Уточни отмеченное поле.",

	"gatekeeper.reason_codes.RC-01": "Отсутствуют или некорректны входные данные",
	"gatekeeper.reason_codes.RC-02": "Цель не определена или неизмерима",
	"gatekeeper.reason_codes.RC-03": "Ответственность не подтверждена",
	"gatekeeper.reason_codes.RC-04": "Противоречит ограничениям реальности",
	"gatekeeper.reason_codes.RC-05": "Проблема с легальностью",
	"gatekeeper.reason_codes.RC-06": "Регион отсутствует или некорректен",
	"gatekeeper.reason_codes.RC-07": "Капитал отсутствует или непарсируем",
	"gatekeeper.reason_codes.RC-08": "Горизонт указан некорректно",
	"gatekeeper.reason_codes.RC-09": "Капитал ниже производственного порога",

	"gatekeeper.status.dirty":    "Данные изменены - требуется повторная проверка.",
	"gatekeeper.status.admitted": "Данные готовы (ADMITTED).",
}
