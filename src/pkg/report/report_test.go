package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuumbleweed/xerr"
	"github.com/xuri/excelize/v2"

	"remote-report/src/pkg/businessday"
	"remote-report/src/pkg/email"
	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/runlog"
	"remote-report/src/pkg/workbook"
)

type fakeLoader struct {
	dataset remotes.Dataset
	fail    bool
	calls   int
}

func (f *fakeLoader) Load(ctx context.Context) (remotes.Dataset, *xerr.Error) {
	f.calls++
	if f.fail {
		return remotes.Dataset{}, xerr.NewError(remotes.ErrDataRetrieval, "data retrieval failed", "test")
	}
	return f.dataset, nil
}

type fakeMailer struct {
	sent     bool
	fail     bool
	messages []email.Message
}

func (f *fakeMailer) Send(ctx context.Context, message email.Message) (bool, *xerr.Error) {
	f.messages = append(f.messages, message)
	if f.fail {
		return false, xerr.NewError(errors.New("smtp: 554"), "Unable to send email", message.Subject)
	}
	return f.sent, nil
}

var reportDay = time.Date(2024, 3, 4, 18, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func sampleDataset() remotes.Dataset {
	return remotes.Dataset{
		Today: []remotes.RemoteRecord{
			{Index: 0, EmployeeID: "A", Name: "Ana Soto", Department: "Finance", Unit: "Treasury"},
			{Index: 1, EmployeeID: "B", Name: "Beto Díaz", Department: "Finance", Unit: "Treasury"},
		},
		Departments: []remotes.DepartmentSummary{
			{Department: "Finance", EmployeeCount: 20, RemoteCount: 1, RemotePercentage: decimal.NewFromInt(5)},
			{Department: "Legal", EmployeeCount: 25, RemoteCount: 3, RemotePercentage: decimal.NewFromInt(12)},
			{Department: "Sales", EmployeeCount: 50, RemoteCount: 4, RemotePercentage: decimal.NewFromInt(8)},
		},
		FiveDay: []remotes.FiveDayRecord{
			{EmployeeID: "A", Date: day(0)},
			{EmployeeID: "A", Date: day(1)},
			{EmployeeID: "A", Date: day(5)},
		},
		FiveDayByDate: []remotes.FiveDayDepartmentSummary{
			{Date: day(5), Count: 2},
			{Date: day(0), Count: 1},
			{Date: day(1), Count: 1},
		},
	}
}

func useConfig(t *testing.T) string {
	t.Helper()

	previous := Cfg
	Cfg = DefaultValueConfig()
	Cfg.OutputDir = filepath.Join(t.TempDir(), "files")
	Cfg.DPI = 20
	Cfg.Sender = "reportes@example.com"
	Cfg.Recipients = []string{"jefe@example.com"}
	Cfg.CC = []string{"auditoria@example.com"}
	Cfg.Contacts = []string{"uno@example.com", "dos@example.com"}
	t.Cleanup(func() { Cfg = previous })

	return Cfg.OutputDir
}

func TestPipeline_Run(t *testing.T) {
	outputDir := useConfig(t)
	var journalBuf bytes.Buffer

	loader := &fakeLoader{dataset: sampleDataset()}
	mailer := &fakeMailer{sent: true}
	pipeline := &Pipeline{
		Loader:  loader,
		Gate:    businessday.Fixed(true),
		Mailer:  mailer,
		Journal: runlog.NewJournal(&journalBuf, "test"),
		Now:     func() time.Time { return reportDay },
	}

	payload, e := pipeline.Run(context.Background())
	require.Nil(t, e)
	require.NotNil(t, payload)

	expectedPath := filepath.Join(outputDir, "usuarios-remotos-2024-03-04.xlsx")
	assert.Equal(t, expectedPath, payload.WorkbookPath)
	assert.FileExists(t, expectedPath)

	require.Len(t, mailer.messages, 1)
	message := mailer.messages[0]
	assert.Equal(t, "Reporte de Usuarios Remotos - 2024-03-04", message.Subject)
	assert.Equal(t, []string{"jefe@example.com"}, message.Recipients)
	assert.Equal(t, []string{"auditoria@example.com"}, message.CC)
	assert.Equal(t, []string{expectedPath}, message.Attachments)
	assert.Equal(t, 4, strings.Count(message.HTML, `<img src="data:image/png;base64,`))
	assert.NotEmpty(t, message.Text)

	assert.Contains(t, journalBuf.String(), "data retrieved")
	assert.Contains(t, journalBuf.String(), "report sent")
}

func TestPipeline_SkipsNonBusinessDay(t *testing.T) {
	outputDir := useConfig(t)

	loader := &fakeLoader{dataset: sampleDataset()}
	mailer := &fakeMailer{sent: true}
	pipeline := &Pipeline{Loader: loader, Gate: businessday.Fixed(false), Mailer: mailer}

	payload, e := pipeline.Run(context.Background())
	assert.Nil(t, e)
	assert.Nil(t, payload)
	assert.Equal(t, 0, loader.calls)
	assert.Empty(t, mailer.messages)
	assert.NoDirExists(t, outputDir)
}

func TestPipeline_MailerReportsNotSent(t *testing.T) {
	useConfig(t)

	mailer := &fakeMailer{sent: false}
	pipeline := &Pipeline{
		Loader: &fakeLoader{dataset: sampleDataset()},
		Gate:   businessday.Fixed(true),
		Mailer: mailer,
		Now:    func() time.Time { return reportDay },
	}

	payload, e := pipeline.Run(context.Background())
	require.NotNil(t, e)
	assert.ErrorIs(t, e.Err, ErrDispatch)
	require.NotNil(t, payload)
	assert.FileExists(t, payload.WorkbookPath)
}

func TestPipeline_MailerError(t *testing.T) {
	useConfig(t)

	pipeline := &Pipeline{
		Loader: &fakeLoader{dataset: sampleDataset()},
		Gate:   businessday.Fixed(true),
		Mailer: &fakeMailer{fail: true},
		Now:    func() time.Time { return reportDay },
	}

	_, e := pipeline.Run(context.Background())
	require.NotNil(t, e)
	assert.ErrorIs(t, e.Err, ErrDispatch)
}

func TestPipeline_WorkbookFailureStopsBeforeSending(t *testing.T) {
	useConfig(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	Cfg.OutputDir = filepath.Join(blocker, "files")

	mailer := &fakeMailer{sent: true}
	pipeline := &Pipeline{
		Loader: &fakeLoader{dataset: sampleDataset()},
		Gate:   businessday.Fixed(true),
		Mailer: mailer,
		Now:    func() time.Time { return reportDay },
	}

	payload, e := pipeline.Run(context.Background())
	require.NotNil(t, e)
	assert.ErrorIs(t, e.Err, ErrReportGeneration)
	assert.Nil(t, payload)
	assert.Empty(t, mailer.messages)
}

func TestPipeline_LoaderError(t *testing.T) {
	outputDir := useConfig(t)

	mailer := &fakeMailer{sent: true}
	pipeline := &Pipeline{
		Loader: &fakeLoader{fail: true},
		Gate:   businessday.Fixed(true),
		Mailer: mailer,
		Now:    func() time.Time { return reportDay },
	}

	payload, e := pipeline.Run(context.Background())
	require.NotNil(t, e)
	assert.ErrorIs(t, e.Err, remotes.ErrDataRetrieval)
	assert.Nil(t, payload)
	assert.Empty(t, mailer.messages)
	assert.NoDirExists(t, outputDir)
}

func TestCompose_FourImagesInOrder(t *testing.T) {
	useConfig(t)

	artifacts, e := Compose(sampleDataset(), Cfg, remotes.DefaultLabels())
	require.Nil(t, e)
	require.Len(t, artifacts, 4)

	names := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		names = append(names, artifact.Name)
		assert.NotEmpty(t, artifact.PNG)
	}
	assert.Equal(t, []string{"remotos-por-gerencia", "detalle-remotos-gerencia", "remotos-5-dias", "detalle-remotos-hoy"}, names)
}

func TestBuildBody(t *testing.T) {
	useConfig(t)

	artifacts, e := Compose(sampleDataset(), Cfg, remotes.DefaultLabels())
	require.Nil(t, e)

	body := BuildBody(artifacts, Cfg)
	assert.True(t, strings.HasPrefix(body, "<p>Estimados(as),</p>"))
	assert.Contains(t, body, `style="width: 80%; height: auto;"`)
	assert.Contains(t, body, "<i>Este mensaje fue enviado de manera automática.")
	assert.Contains(t, body, "uno@example.com o dos@example.com")

	first := strings.Index(body, artifacts[0].DataURI())
	last := strings.Index(body, artifacts[3].DataURI())
	assert.True(t, first >= 0 && last > first)
}

func TestBuildText(t *testing.T) {
	text := BuildText(sampleDataset(), Config{Contacts: []string{"uno@example.com"}})

	assert.Contains(t, text, "Empleados remotos hoy: 2")
	assert.Contains(t, text, "- Legal: 3 de 25 (12%)")
	assert.Contains(t, text, "uno@example.com.")
}

func TestSheets_WorkbookContents(t *testing.T) {
	outputDir := useConfig(t)
	path := filepath.Join(outputDir, "report.xlsx")

	sheets := Sheets(sampleDataset(), remotes.DefaultLabels(), "2006-01-02")
	require.Nil(t, workbook.Export(path, sheets))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{SheetToday, SheetDepartments, SheetFiveDay, SheetFiveDayDate}, file.GetSheetList())

	expected := map[string]struct {
		header []string
		rows   int
	}{
		SheetToday:       {[]string{"Rut", "Nombre", "Gerencia", "Unidad"}, 2},
		SheetDepartments: {[]string{"Gerencia", "Empleados", "Remotos", "% Remotos"}, 3},
		SheetFiveDay:     {[]string{"Rut", "Fecha"}, 3},
		SheetFiveDayDate: {[]string{"Fecha", "CantidadRemotos"}, 3},
	}
	for name, want := range expected {
		rows, err := file.GetRows(name)
		require.NoError(t, err, name)
		require.Len(t, rows, want.rows+1, name)
		assert.Equal(t, want.header, rows[0], name)
	}

	rows, err := file.GetRows(SheetFiveDayDate)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-03", "2"}, rows[1])
}

func TestWorkbookPath(t *testing.T) {
	cfg := DefaultValueConfig()
	assert.Equal(t, filepath.Join("files", "usuarios-remotos-2024-03-04.xlsx"), WorkbookPath(cfg, reportDay))
}

func TestArchive(t *testing.T) {
	useConfig(t)

	artifacts, e := Compose(sampleDataset(), Cfg, remotes.DefaultLabels())
	require.Nil(t, e)
	payload := &Payload{Date: reportDay, Subject: "s", HTML: "<p>x</p>", Artifacts: artifacts}

	runDir, e := Archive(payload, t.TempDir())
	require.Nil(t, e)
	assert.Equal(t, "2024-03-04", filepath.Base(runDir))

	for _, name := range []string{"remotos-por-gerencia.png", "detalle-remotos-hoy.png", "body.html", "payload.json"} {
		assert.FileExists(t, filepath.Join(runDir, name))
	}
}

func TestPipeline_ArchivesWhenConfigured(t *testing.T) {
	useConfig(t)
	Cfg.ArchiveDir = filepath.Join(t.TempDir(), "archive")

	pipeline := &Pipeline{
		Loader: &fakeLoader{dataset: sampleDataset()},
		Gate:   businessday.Fixed(true),
		Mailer: &fakeMailer{sent: true},
		Now:    func() time.Time { return reportDay },
	}

	_, e := pipeline.Run(context.Background())
	require.Nil(t, e)
	assert.FileExists(t, filepath.Join(Cfg.ArchiveDir, "2024-03-04", "payload.json"))
}
