package analysis

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/artem13815/skillgap/pkg/metrics"
	"github.com/artem13815/skillgap/pkg/nlp"
	"github.com/artem13815/skillgap/pkg/resume"
)

// UseCase — сценарии анализа навыков: по загруженному резюме или по введённому тексту.
type UseCase interface {
	AnalyzeDocument(filename string, data []byte) Outcome
	AnalyzeManual(input string) Outcome
	AnalyzeNothing() Outcome
}

// Uploads persists an uploaded file and returns its path.
type Uploads interface {
	Save(filename string, data []byte) (string, error)
}

type service struct {
	analyzer   *Analyzer
	recognizer *nlp.Recognizer
	uploads    Uploads
	log        *zap.Logger
}

func NewService(analyzer *Analyzer, recognizer *nlp.Recognizer, uploads Uploads, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		analyzer:   analyzer,
		recognizer: recognizer,
		uploads:    uploads,
		log:        log,
	}
}

// AnalyzeDocument stores the upload, extracts its text and matches tokens.
// Extraction failures and unsupported formats degrade to an empty skill set.
func (s *service) AnalyzeDocument(filename string, data []byte) Outcome {
	l := s.log.With(zap.String("filename", filepath.Base(filename)), zap.Int("size", len(data)))

	format, ok := resume.FormatFromFilename(filename)
	if !ok {
		l.Info("unsupported resume format, analysing without skills")
		return s.outcome(SourceDocument, []string{})
	}

	var text string
	path, err := s.uploads.Save(filename, data)
	if err != nil {
		// the upload is still in memory
		l.Warn("store upload", zap.Error(err))
		text, err = resume.ExtractBytes(data, format)
	} else {
		text, err = resume.Extract(path, format)
	}
	if err != nil {
		metrics.ExtractionFailures.WithLabelValues(format.String()).Inc()
		l.Warn("extract resume text", zap.String("format", format.String()), zap.Error(err))
		text = ""
	}
	skills := s.recognizer.FromText(text)
	l.Debug("skills recognized", zap.Int("count", len(skills)))
	return s.outcome(SourceDocument, skills)
}

func (s *service) AnalyzeManual(input string) Outcome {
	return s.outcome(SourceManual, s.recognizer.FromManual(input))
}

// AnalyzeNothing is used when neither a file nor a skills field was sent.
func (s *service) AnalyzeNothing() Outcome {
	return s.outcome(SourceNone, []string{})
}

func (s *service) outcome(src Source, skills []string) Outcome {
	metrics.AnalysesTotal.WithLabelValues(string(src)).Inc()
	return Outcome{
		Source: src,
		Skills: skills,
		Jobs:   s.analyzer.Analyze(skills),
	}
}
