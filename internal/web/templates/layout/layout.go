package layout

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData holds fields shared by every page
type PageData struct {
	Title string
	Flash *FlashMessage
}
