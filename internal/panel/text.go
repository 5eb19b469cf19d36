package panel

// UI literals, in the language of the web panels they replace.
const (
	TextLoading          = "Se încarcă…"
	TextLoadingPlain     = "Se încarcă..."
	TextNoEvents         = "Nu există evenimente de afișat."
	TextEventsLoadError  = "Eroare la încărcarea evenimentelor."
	TextAdapterError     = "Adapter error: "
	TextNoTitle          = "No Title"
	TextNothingGenerated = "Nimic generat încă."
	TextNoContent        = "(fără conținut)"
	TextErrorPrefix      = "Eroare: "
	TextGenerateFailed   = "Eroare la generare."
	TextLoadFailed       = "Eroare la încărcare!"
	TextNoLocation       = "Fără locație"

	TextGeneratingPlan = "Se generează planul…"
	TextGeneratingFood = "Se generează recomandarea…"
	TextGeneratingDay  = "Se generează ziua…"

	TextCalendarUsedYes = "Calendar folosit: da"
	TextCalendarUsedNo  = "Calendar folosit: nu"

	TextCurrentMonth = "Evenimente din luna curentă"
	TextFuture       = "Evenimente viitoare"
	TextNoPast       = "Niciun eveniment trecut."
	TextNoFuture     = "Niciun eveniment viitor."

	TextNow        = "Acum"
	TextNext       = "Urmează"
	TextNothingNow = "Niciun eveniment în desfășurare."

	TextWorkout  = "Antrenament"
	TextMeal     = "Alimentație"
	TextSchedule = "Program"
)

// eventHeaders are the calendar table columns, in order.
var eventHeaders = []string{"Titlu", "Start (data)", "End (data)", "Start (exact)", "End (exact)", "Locație"}
