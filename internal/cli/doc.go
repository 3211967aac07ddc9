// Package cli implements widgetcheck, a small tool for checking login widget
// payloads by hand.
//
// Commands are taken from the command line, or, when none is given, read
// one per line from standard input:
//
//	check <query>                  verify a payload and print the user
//	sign <query>                   print the hash for the given fields
//	embed callback <func> <param>  print callback embed code
//	embed redirect <url>           print redirect embed code
//	offset <seconds>               change the allowed auth_date offset
//	help                           list commands
//	exit | quit                    leave
//
// <query> is a raw query string ("id=1&auth_date=...&hash=...") or a full
// callback URL whose query carries the fields.
//
// If no bot token is configured the user is asked for it without echo.
package cli
