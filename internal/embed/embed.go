// Package embed renders the <script> tag that places the login widget on a
// page. It only interpolates strings; nothing here touches the verifier.
package embed

import (
	"html"
	"strconv"
	"strings"
)

// WidgetJSVersion is the widget script version appended to the script URL.
var WidgetJSVersion = 5

// ButtonStyle selects the size of the login button.
type ButtonStyle int

const (
	Large ButtonStyle = iota
	Medium
	Small
)

func (s ButtonStyle) String() string {
	switch s {
	case Medium:
		return "medium"
	case Small:
		return "small"
	default:
		return "large"
	}
}

// ParseButtonStyle maps "large", "medium" or "small" (any case) to a
// ButtonStyle. Unknown names yield Large and false.
func ParseButtonStyle(s string) (ButtonStyle, bool) {
	switch strings.ToLower(s) {
	case "large":
		return Large, true
	case "medium":
		return Medium, true
	case "small":
		return Small, true
	}
	return Large, false
}

type options struct {
	style         ButtonStyle
	showUserPhoto bool
	requestAccess bool
}

// Option adjusts the rendered widget.
type Option func(*options)

// WithButtonStyle sets the button size. Defaults to Large.
func WithButtonStyle(s ButtonStyle) Option {
	return func(o *options) { o.style = s }
}

// WithUserPhoto controls whether the user's photo is shown next to the
// button. Defaults to true.
func WithUserPhoto(show bool) Option {
	return func(o *options) { o.showUserPhoto = show }
}

// WithRequestAccess controls whether the widget asks for permission for the
// bot to message the user. Defaults to true.
func WithRequestAccess(request bool) Option {
	return func(o *options) { o.requestAccess = request }
}

// CallbackEmbedCode returns embed code that calls
// callbackFunc(callbackParam) in the page once the user logs in.
func CallbackEmbedCode(botName, callbackFunc, callbackParam string, opts ...Option) string {
	auth := `data-onauth="` + html.EscapeString(callbackFunc+"("+callbackParam+")") + `"`
	return render(botName, auth, opts)
}

// RedirectEmbedCode returns embed code that redirects the browser to
// redirectURL with the signed fields in the query string.
func RedirectEmbedCode(botName, redirectURL string, opts ...Option) string {
	auth := `data-auth-url="` + html.EscapeString(redirectURL) + `"`
	return render(botName, auth, opts)
}

func render(botName, auth string, opts []Option) string {
	o := options{style: Large, showUserPhoto: true, requestAccess: true}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString(`<script async src="https://telegram.org/js/telegram-widget.js?`)
	sb.WriteString(strconv.Itoa(WidgetJSVersion))
	sb.WriteString(`" data-telegram-login="`)
	sb.WriteString(html.EscapeString(botName))
	sb.WriteString(`" data-size="`)
	sb.WriteString(o.style.String())
	sb.WriteString(`" `)
	if !o.showUserPhoto {
		sb.WriteString(`data-userpic="false" `)
	}
	if o.requestAccess {
		sb.WriteString(`data-request-access="write" `)
	}
	sb.WriteString(auth)
	sb.WriteString(`></script>`)
	return sb.String()
}
