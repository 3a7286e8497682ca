// Package format renders lookup results for the terminal.
package format

import (
	"go-currency-checker"
	"strings"
	"text/template"
)

var conversionTemplate = template.Must(template.New("conversion").Parse(`
----------------
Currency Checker
----------------
Conversion
--
Amount: {{.Amount}}
From:   {{.Source}}
To:     {{.Target}}
--
Result: {{.Result}} {{.Target}}
----------------
`))

var rateTemplate = template.Must(template.New("rate").Parse(`
----------------
Currency Checker
----------------
Exchange Rate
--
From:   {{.Source}}
To:     {{.Target}}
--
Result: 1 {{.Source}} = {{.Result}} {{.Target}}
----------------
`))

var isoTemplate = template.Must(template.New("iso").Funcs(template.FuncMap{"join": strings.Join}).Parse(`
----------------
Currency Checker
----------------
ISO 4217
--
Input:  {{.Input}}
--
Result: {{.Record.Code}} {{.Record.Number}}
Name:   {{.Record.Name}}
Minor:  {{.Record.MinorUnits}}
Used:   {{join .Record.Entities ", "}}
----------------
`))

// Conversion renders a converted amount.
func Conversion(req checker.Request, result string) string {
	if !req.Verbose {
		return result
	}
	return render(conversionTemplate, struct {
		checker.Request
		Result string
	}{req, result})
}

// Rate renders an exchange rate. The request amount is ignored.
func Rate(req checker.Request, result string) string {
	if !req.Verbose {
		return result
	}
	return render(rateTemplate, struct {
		checker.Request
		Result string
	}{req, result})
}

// ISO renders an ISO 4217 record looked up from input.
func ISO(input checker.Currency, record checker.ISORecord, verbose bool) string {
	if !verbose {
		return record.String()
	}
	return render(isoTemplate, struct {
		Input  checker.Currency
		Record checker.ISORecord
	}{input, record})
}

func render(t *template.Template, data interface{}) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}
