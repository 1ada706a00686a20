package job

// Text commands the dispatcher recognizes
const (
	CommandStart     = "/start"
	ButtonFindDoctor = "find my doctor"
	ButtonSearch     = "search by speciality"
	ButtonPromotions = "promotions"
)

// Outbound message texts
const (
	textWelcome         = "Welcome! Tap the button below to find your doctor."
	textSpecialities    = "<b>Choose a speciality</b>"
	textClinicOrPrivate = "<b>Clinic or private doctor?</b>"
	textClinic          = "Clinic"
	textPrivate         = "Private doctor"
	textDistricts       = "<b>Choose a district</b>"
	textSearchPrompt    = "Type a speciality name (at least 3 characters) and I will look it up."
	textNotFound        = "Nothing found, try another search."
)
