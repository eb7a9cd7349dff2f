package cli

const userTemplate = `
=== User Details ===

ID:       {{.ID}}
Name:     {{.DisplayName}}
Username: {{.Username}}
Email:    {{.Email}}
Status:   {{.Status}}
Role:     {{.Role}}
Created:  {{.Created}}
`

const reportTemplate = `
=== Report Details ===

ID:       {{.ID}}
Title:    {{.Title}}
Status:   {{.Status}}
Created:  {{.Created}}
{{- if .Description }}
Description:
---
{{.Description}}
---
{{- end}}
{{- if .DownloadURL }}
File:     {{.DownloadURL}}
{{- end}}
`
