// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"piemarker/internal/bundle"
	"piemarker/internal/config"
	"piemarker/internal/content"
	"piemarker/internal/legend"
	"piemarker/internal/model"
	"piemarker/internal/openapi"
	"piemarker/internal/pieicon"
	"piemarker/internal/svg"
	"piemarker/internal/validate"
)

// readIcon loads an icon definition from a JSON or YAML file.
func readIcon(path string) (icon *pieicon.Icon, err error) {

	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return nil, errors.Wrap(err, "failed to read icon definition")
	}
	var def model.Icon
	if err = content.Unmarshal(content.KindOfFile(path), data, &def); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	if err = validate.ValidateIcon(def); err != nil {
		return nil, err
	}
	return pieicon.New(def.Options()...)
}

func renderCommand(args []string, stdout, stderr io.Writer) (err error) {

	fs := newFlagSet("render", stderr)
	in := fs.String("in", "", "icon definition file (JSON or YAML)")
	out := fs.String("out", "", "output SVG file, stdout when empty")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errUsage
	}

	var icon *pieicon.Icon
	if icon, err = readIcon(*in); err != nil {
		return err
	}
	var surface *svg.Surface
	if surface, err = icon.CreateIcon(nil); err != nil {
		return err
	}

	if *out == "" {
		_, err = surface.WriteTo(stdout)
		return err
	}
	var file *os.File
	if file, err = os.Create(*out); err != nil {
		return errors.Wrap(err, "failed to create output")
	}
	return writeAndClose(file, func(w io.Writer) (err error) {
		_, err = surface.WriteTo(w)
		return err
	})
}

// writeAndClose runs write on wc and closes it. A close error is reported
// when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(w io.Writer) error) (err error) {

	defer func() {
		if closeErr := wc.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "failed to close output")
		}
	}()
	return write(wc)
}

func legendCommand(args []string, stdout, stderr io.Writer) (err error) {

	fs := newFlagSet("legend", stderr)
	in := fs.String("in", "", "icon definition file (JSON or YAML)")
	title := fs.String("title", "Legend", "legend heading")
	mermaid := fs.Bool("mermaid", true, "append a mermaid pie chart")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errUsage
	}

	var icon *pieicon.Icon
	if icon, err = readIcon(*in); err != nil {
		return err
	}
	if _, err = icon.CreateIcon(nil); err != nil {
		return err
	}
	_, err = legend.New(icon.Slices(),
		legend.WithTitle(*title),
		legend.WithPrecision(icon.Precision()),
		legend.WithMermaid(*mermaid),
	).WriteTo(stdout)
	return err
}

func bundleCommand(args []string, stdout, stderr io.Writer) (err error) {

	fs := newFlagSet("bundle", stderr)
	configPath := fs.String("config", "", "configuration file with the markers to bundle")
	out := fs.String("out", "./icons", "output package directory")
	pkg := fs.String("pkg", "", "package name, the output directory name by default")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		fs.Usage()
		return errUsage
	}

	var cfg *config.Config
	if cfg, err = config.Load(*configPath); err != nil {
		return err
	}
	var filePath string
	if filePath, err = bundle.Generate(*out, *pkg, cfg.Markers); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, filePath)
	return err
}

func openapiCommand(args []string, stdout, stderr io.Writer) (err error) {

	fs := newFlagSet("openapi", stderr)
	format := fs.String("format", content.KindYAML, "output format: json or yaml")
	serverURL := fs.String("server", "", "server URL written into the document")
	if err = fs.Parse(args); err != nil {
		return err
	}

	doc := openapi.Document(*serverURL)
	var data []byte
	switch *format {
	case content.KindJSON:
		data, err = doc.ToJSON()
	case content.KindYAML:
		data, err = doc.ToYAML()
	default:
		return errors.Errorf("unknown format %q", *format)
	}
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
