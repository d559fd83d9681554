package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-eka-mr/models"
)

// printResult renders a completed document result to out.
//
// In JSON mode the verbatim server payload is printed (indented, fields
// untouched); in verbose mode the fhir and output payloads are pretty-printed
// in full; otherwise a short availability summary is shown.
func printResult(out io.Writer, result models.DocumentResult, verbose, asJSON bool) {
	if asJSON {
		fmt.Fprintln(out, indentJSON(result.Raw))
		return
	}

	if !verbose {
		fmt.Fprintf(out, "\n%s Processing completed successfully!\n", okMarkStyle.Render("✓"))
		if len(result.Data.FHIR) > 0 {
			fmt.Fprintln(out, "  FHIR data available: Yes")
		}
		if len(result.Data.Output) > 0 {
			fmt.Fprintln(out, "  Output data available: Yes")
		}
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("PROCESSING RESULT"))
	fmt.Fprintf(out, "Status: %s\n", result.Status)

	if len(result.Data.FHIR) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sectionStyle.Render("FHIR Data"))
		fmt.Fprintln(out, indentJSON(result.Data.FHIR))
	}
	if len(result.Data.Output) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sectionStyle.Render("Output Data"))
		fmt.Fprintln(out, indentJSON(result.Data.Output))
	}
}

// indentJSON pretty-prints raw JSON; on malformed input it returns the input
// unchanged rather than hiding the payload from the user.
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
