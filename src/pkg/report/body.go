package report

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/render"
)

const (
	greeting = "Estimados(as),"
	intro    = "Les comparto el reporte generado con la información de los empleados que trabajaron de forma remota el día de hoy. " +
		"Adjunto a este correo encontrarán un archivo de Excel que contiene una lista detallada de todos los empleados que se conectaron de forma remota. " +
		"En este archivo, podrán ver información como el nombre del empleado y su área."
	tablesNote = "Asimismo, esta información la encontrarán en las tablas que se encuentran al final de este correo, además de algunos gráficos que resumen esta información."
	signOff    = "Saludos,"
	footer     = "Este mensaje fue enviado de manera automática. Si tiene algún comentario, duda o sugerencia favor enviar correo a %s."
)

// BuildBody fills the fixed HTML template with the rendered images, inlined as base64.
func BuildBody(artifacts []render.Artifact, cfg Config) string {
	var buf bytes.Buffer

	paragraph := func(text string) {
		buf.WriteString("<p>" + html.EscapeString(text) + "</p>\n")
	}
	paragraph(greeting)
	paragraph(intro)
	paragraph(tablesNote)
	paragraph(signOff)

	for _, artifact := range artifacts {
		fmt.Fprintf(&buf, "<img src=\"%s\" alt=\"%s\" style=\"width: 80%%; height: auto;\" />\n", artifact.DataURI(), html.EscapeString(artifact.Name))
	}

	buf.WriteString("<br>\n<br>\n")
	fmt.Fprintf(&buf, "<i>%s</i>\n", html.EscapeString(fmt.Sprintf(footer, contactList(cfg.Contacts))))
	return buf.String()
}

// BuildText is the plain-text alternative of the body.
func BuildText(dataset remotes.Dataset, cfg Config) string {
	var buf bytes.Buffer

	buf.WriteString(greeting + "\n\n" + intro + "\n\n")
	fmt.Fprintf(&buf, "Empleados remotos hoy: %d\n", len(dataset.Today))
	for _, row := range dataset.Departments {
		fmt.Fprintf(&buf, "- %s: %d de %d (%s%%)\n", row.Department, row.RemoteCount, row.EmployeeCount, row.RemotePercentage.String())
	}
	buf.WriteString("\n" + signOff + "\n\n")
	fmt.Fprintf(&buf, footer+"\n", contactList(cfg.Contacts))
	return buf.String()
}

func contactList(contacts []string) string {
	switch len(contacts) {
	case 0:
		return "el administrador del reporte"
	case 1:
		return contacts[0]
	default:
		return strings.Join(contacts[:len(contacts)-1], ", ") + " o " + contacts[len(contacts)-1]
	}
}
