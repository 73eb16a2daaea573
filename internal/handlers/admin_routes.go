package handlers

// AdminPathPrefixes lists every route prefix that mutates portfolio
// content. The token guard is mounted on exactly these prefixes so the
// public routes, /health and unmatched paths stay outside it.
var AdminPathPrefixes = []string{
	"/update-education",
	"/update-experience",
	"/edit-experience",
	"/update-portfolio",
	"/edit-project",
	"/update-certificate",
	"/edit-certificates",
	"/save-certificate-edits",
	"/update-tools",
	"/edit-tools",
	"/save-tool-edits",
}
