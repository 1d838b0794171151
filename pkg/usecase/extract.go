package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/net/html/charset"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/model"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/types"
)

// presentationNS is the PresentationML namespace. The non-visual drawing
// properties element (cNvPr) is matched by local name within this
// namespace, regardless of the prefix used in the document.
const presentationNS = "http://schemas.openxmlformats.org/presentationml/2006/main"

const (
	slidePartPrefix = "ppt/slides/slide"
	slidePartSuffix = ".xml"
)

type extractUseCase struct{}

// NewExtract creates a new instance of ExtractUseCase
func NewExtract() *extractUseCase {
	return &extractUseCase{}
}

// Extract opens data as a pptx package and collects the name attribute of
// every cNvPr element per slide, in document order. An unparseable slide
// contributes an empty entry with an error note; the rest of the package is
// still processed.
func (uc *extractUseCase) Extract(ctx context.Context, filename string, data []byte) (*model.ExtractionResult, error) {
	logger := ctxlog.From(ctx)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, goerr.Wrap(types.ErrNotAPackage, "opening upload as zip",
			goerr.V("filename", filename))
	}

	parts := slideParts(zr)
	logger.Info("Found slide parts",
		slog.String("filename", filename),
		slog.Int("count", len(parts)),
	)

	result := &model.ExtractionResult{Filename: filename}
	for i, part := range parts {
		slide := model.SlideResult{Index: i + 1}

		descs, err := readSlideDescriptions(part)
		if err != nil {
			logger.Warn("Slide XML is malformed, continuing with remaining slides",
				slog.Int("slide", slide.Index),
				slog.String("part", part.Name),
				slog.Any("error", err),
			)
			slide.Err = types.ErrMalformedXML.Error()
		} else {
			slide.Descriptions = descs
		}

		result.Slides = append(result.Slides, slide)
	}

	return result, nil
}

// slideParts returns the slide XML entries of the package ordered by the
// integer embedded in their filename. Lexical order would put slide10
// before slide2, so the numeric suffix is what sorts.
func slideParts(zr *zip.Reader) []*zip.File {
	type numberedPart struct {
		file *zip.File
		num  int
	}

	var parts []numberedPart
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, slidePartPrefix) || !strings.HasSuffix(f.Name, slidePartSuffix) {
			continue
		}
		base := path.Base(f.Name)
		numStr := strings.TrimSuffix(strings.TrimPrefix(base, "slide"), slidePartSuffix)
		num, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		parts = append(parts, numberedPart{file: f, num: num})
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].num < parts[j].num })

	files := make([]*zip.File, 0, len(parts))
	for _, p := range parts {
		files = append(files, p.file)
	}
	return files
}

// readSlideDescriptions opens one slide part and scans its XML for cNvPr
// name attributes. Elements with an empty or absent name are skipped.
func readSlideDescriptions(part *zip.File) ([]string, error) {
	rc, err := part.Open()
	if err != nil {
		return nil, goerr.Wrap(types.ErrMalformedXML, "opening slide part",
			goerr.V("part", part.Name))
	}
	defer rc.Close()

	return scanDescriptions(rc)
}

func scanDescriptions(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var descs []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(types.ErrMalformedXML, "decoding slide XML",
				goerr.V("cause", err.Error()))
		}

		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Space != presentationNS || el.Name.Local != "cNvPr" {
			continue
		}

		for _, attr := range el.Attr {
			if attr.Name.Local == "name" && attr.Value != "" {
				descs = append(descs, attr.Value)
			}
		}
	}
	return descs, nil
}
