// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package bundle generates a Go package with pre-rendered marker icons, so
// maps can ship icons without rendering them at run time.
package bundle

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
	"golang.org/x/tools/imports"

	"piemarker/internal/mod"
	"piemarker/internal/model"
	"piemarker/internal/pieicon"
	"piemarker/internal/svg"
)

const (
	doNotEdit = "Code generated by piemarker bundle. DO NOT EDIT."

	// FileName is the name of the generated file inside the output directory.
	FileName = "icons.go"

	defaultPackage = "icons"
)

type renderedIcon struct {
	def     model.Definition
	size    svg.Size
	markup  string
	percent []float64
}

// Generate renders defs and writes them as package pkgName into outDir.
// An empty pkgName uses the base name of outDir, or "icons".
func Generate(outDir, pkgName string, defs []model.Definition) (filePath string, err error) {

	if pkgName == "" {
		pkgName = packageName(outDir)
	}

	var rendered []renderedIcon
	if rendered, err = render(defs); err != nil {
		return "", err
	}

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", outDir)
	}

	var pkgPath string
	if pkgPath, err = mod.PkgPath(outDir); err != nil {
		if !errors.Is(err, mod.ErrNoGoMod) {
			return "", err
		}
		slog.Warn("bundle outside a module, import path omitted", slog.String("dir", outDir))
	}

	var buf bytes.Buffer
	if err = newFile(pkgName, pkgPath, rendered).Render(&buf); err != nil {
		return "", errors.Wrap(err, "failed to render bundle")
	}

	filePath = filepath.Join(outDir, FileName)
	var source []byte
	if source, err = imports.Process(filePath, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}); err != nil {
		return "", errors.Wrap(err, "failed to format bundle")
	}
	if err = os.WriteFile(filePath, source, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", filePath)
	}
	slog.Info("bundle written", slog.String("file", filePath), slog.Int("icons", len(rendered)))
	return filePath, nil
}

func packageName(outDir string) string {

	name := filepath.Base(filepath.Clean(outDir))
	if !isIdent(name) {
		return defaultPackage
	}
	return name
}

func isIdent(name string) bool {

	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func render(defs []model.Definition) (rendered []renderedIcon, err error) {

	for i, def := range defs {
		var icon *pieicon.Icon
		if icon, err = pieicon.New(def.Icon.Options()...); err != nil {
			return nil, errors.Wrapf(err, "marker %d (%s)", i, def.ID)
		}
		var surface *svg.Surface
		if surface, err = icon.CreateIcon(nil); err != nil {
			return nil, errors.Wrapf(err, "marker %d (%s)", i, def.ID)
		}
		r := renderedIcon{def: def, size: icon.Size(), markup: surface.Markup()}
		for _, s := range icon.Slices() {
			r.percent = append(r.percent, s.Percent)
		}
		rendered = append(rendered, r)
	}
	return rendered, nil
}

func newFile(pkgName, pkgPath string, rendered []renderedIcon) *jen.File {

	f := jen.NewFile(pkgName)
	f.HeaderComment(doNotEdit)
	f.PackageComment("Package " + pkgName + " holds pre-rendered pie chart marker icons.")

	if pkgPath != "" {
		f.Comment("ImportPath is the import path of this package.")
		f.Const().Id("ImportPath").Op("=").Lit(pkgPath)
	}

	f.Line().Type().Id("Slice").Struct(
		jen.Id("Label").String(),
		jen.Id("Color").String(),
		jen.Id("Value").Float64(),
		jen.Id("Percent").Float64(),
	)
	f.Line().Type().Id("Icon").Struct(
		jen.Id("ID").String(),
		jen.Id("Title").String(),
		jen.Id("Lat").Float64(),
		jen.Id("Lng").Float64(),
		jen.Id("ZIndexOffset").Int(),
		jen.Id("Width").Int(),
		jen.Id("Height").Int(),
		jen.Id("Slices").Index().Id("Slice"),
		jen.Id("SVG").String(),
	)

	f.Line().Var().Id("icons").Op("=").Index().Id("Icon").ValuesFunc(func(g *jen.Group) {
		for _, r := range rendered {
			g.Line().Values(iconValues(r))
		}
		if len(rendered) > 0 {
			g.Line()
		}
	})

	f.Line().Comment("All returns every bundled icon in definition order.")
	f.Func().Id("All").Params().Index().Id("Icon").Block(
		jen.Return(jen.Qual("slices", "Clone").Call(jen.Id("icons"))),
	)

	f.Line().Func().Id("ByID").Params(jen.Id("id").String()).Params(jen.Id("Icon"), jen.Bool()).Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("icon")).Op(":=").Range().Id("icons")).Block(
			jen.If(jen.Id("icon").Dot("ID").Op("==").Id("id")).Block(
				jen.Return(jen.Id("icon"), jen.True()),
			),
		),
		jen.Return(jen.Id("Icon").Values(), jen.False()),
	)
	return f
}

func iconValues(r renderedIcon) jen.Dict {

	slices := jen.Index().Id("Slice").ValuesFunc(func(g *jen.Group) {
		for i, s := range r.def.Icon.Data {
			g.Values(jen.Dict{
				jen.Id("Label"):   jen.Lit(s.Label),
				jen.Id("Color"):   jen.Lit(s.Color),
				jen.Id("Value"):   jen.Lit(s.Value),
				jen.Id("Percent"): jen.Lit(r.percent[i]),
			})
		}
	})

	dict := jen.Dict{
		jen.Id("ID"):     jen.Lit(r.def.ID),
		jen.Id("Lat"):    jen.Lit(r.def.Lat),
		jen.Id("Lng"):    jen.Lit(r.def.Lng),
		jen.Id("Width"):  jen.Lit(int(r.size.Width)),
		jen.Id("Height"): jen.Lit(int(r.size.Height)),
		jen.Id("Slices"): slices,
		jen.Id("SVG"):    jen.Lit(r.markup),
	}
	if r.def.Title != "" {
		dict[jen.Id("Title")] = jen.Lit(r.def.Title)
	}
	if r.def.ZIndexOffset != 0 {
		dict[jen.Id("ZIndexOffset")] = jen.Lit(r.def.ZIndexOffset)
	}
	return dict
}
