package webui

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// exportTabs maps the export route names to the report tabs they mirror.
var exportTabs = map[string]int{
	"alumnos_ciclo":          1,
	"cursos_demandados":      2,
	"rendimiento":            3,
	"notas_3_ultimos_ciclos": 4,
	"notas_ultimo_ciclo":     5,
	"notas_por_ciclo":        6,
}

func exportName(tab int) string {
	for name, n := range exportTabs {
		if n == tab {
			return name
		}
	}
	return ""
}

// export streams the named report as a workbook: the same sections as the
// rendered tab, one sheet, headings and header rows above each block.
func (web *reportWeb) export(ctx echo.Context) error {
	name := ctx.Param("name")
	tab, ok := exportTabs[name]
	if !ok {
		return errBadID
	}
	sections, err := web.buildTab(ctx, tab)
	if err != nil {
		return err
	}

	f, err := buildWorkbook(name, sections)
	if err != nil {
		return err
	}
	defer f.Close()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	resp.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`.xlsx"`)
	resp.WriteHeader(http.StatusOK)
	if err := f.Write(resp); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func buildWorkbook(sheet string, sections []reportSection) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, errors.Wrap(err, "naming sheet")
	}

	row := 1
	writeRow := func(cells []interface{}) error {
		addr, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return err
		}
		row++
		return nil
	}

	for _, section := range sections {
		if section.Heading != "" {
			if err := writeRow([]interface{}{section.Heading}); err != nil {
				return nil, errors.Wrap(err, "writing heading")
			}
		}
		header := make([]interface{}, 0, len(section.Table.Columns))
		for _, col := range section.Table.Columns {
			header = append(header, col.Title)
		}
		if err := writeRow(header); err != nil {
			return nil, errors.Wrap(err, "writing header row")
		}
		for _, cells := range section.Table.Rows {
			values := make([]interface{}, 0, len(cells))
			for _, cell := range cells {
				values = append(values, cell.Text)
			}
			if err := writeRow(values); err != nil {
				return nil, errors.Wrap(err, "writing data row")
			}
		}
		row++ // blank separator between sections
	}
	return f, nil
}
