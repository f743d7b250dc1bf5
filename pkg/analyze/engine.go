package analyze

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// Parser parses JavaScript content into a FileSnapshot.
//
// The analyze package defines this interface in the consumer package;
// pkg/parser provides the concrete implementation. Implementations must
// be deterministic for a given (path, content) pair, side-effect free,
// and safe for concurrent use.
type Parser interface {
	// Parse converts raw source bytes into a FileSnapshot with a
	// populated AST. On error no partial snapshot is returned; the
	// engine degrades such files to text-scanner-only analysis.
	Parse(ctx context.Context, path string, content []byte) (*jsast.FileSnapshot, error)
}

// Engine drives rule execution for analysis. It holds no per-file state:
// a single Engine may analyze multiple files concurrently as long as the
// rules themselves are stateless, which the Rule contract requires.
type Engine struct {
	// Parser parses source files into snapshots.
	Parser Parser

	// Rules is the immutable rule set for this engine.
	Rules *RuleSet

	// Config carries the per-rule enable/severity mapping.
	Config *config.Config

	// Logger receives rule-failure and parse-failure diagnostics.
	// Nil means the default logger.
	Logger *log.Logger
}

// NewEngine creates an Engine over the given parser, rule set, and
// configuration.
func NewEngine(parser Parser, rules *RuleSet, cfg *config.Config) *Engine {
	return &Engine{
		Parser: parser,
		Rules:  rules,
		Config: cfg,
	}
}

// Analyze runs every enabled rule over one file and returns the
// suggestions in deterministic source order: node-visitor findings in
// pre-order traversal order (rules in ID order within a node), then
// text-scanner findings per rule in ID order.
func (e *Engine) Analyze(ctx context.Context, path string, content []byte) []Suggestion {
	suggestions, _ := e.run(ctx, path, content, false)
	return suggestions
}

// AnalyzeWithFixes behaves identically to Analyze but additionally
// captures an AutofixSuggestion for every finding whose rule supplied an
// exact replacement range.
func (e *Engine) AnalyzeWithFixes(
	ctx context.Context,
	path string,
	content []byte,
) ([]Suggestion, []fix.AutofixSuggestion) {
	return e.run(ctx, path, content, true)
}

func (e *Engine) run(
	ctx context.Context,
	path string,
	content []byte,
	captureFixes bool,
) ([]Suggestion, []fix.AutofixSuggestion) {
	resolved := resolveRules(e.Rules, e.Config)

	var suggestions []Suggestion
	var fixes []fix.AutofixSuggestion

	// Parse failure is non-fatal: the traversal is skipped, but text
	// scanners still run against the raw source.
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		snapshot = nil
		e.log().Debug("file not tree-parseable, running text scanners only",
			"path", path, "error", err)
	}

	// One context per rule, with the reporting callback bound to that
	// rule's identity and resolved severity. All contexts share one
	// per-file node cache.
	var root *jsast.Node
	if snapshot != nil {
		root = snapshot.Root
	}
	cache := newNodeCache(root)

	contexts := make([]*RuleContext, len(resolved))
	for i, rr := range resolved {
		rc := &RuleContext{
			Ctx:      ctx,
			FilePath: path,
			Source:   content,
			File:     snapshot,
			cache:    cache,
		}
		rule, severity := rr.rule, rr.severity
		rc.emit = func(r Report) {
			desc := r.Message
			if desc == "" {
				desc = rule.Description()
			}
			suggestions = append(suggestions, Suggestion{
				FilePath:    path,
				RuleID:      rule.ID(),
				Line:        r.Pos.Line,
				Column:      r.Pos.Col,
				OldCode:     r.OldCode,
				NewCode:     r.NewCode,
				Description: desc,
				Category:    rule.Category(),
				Tier:        rule.Tier(),
				Severity:    severity,
			})
			if captureFixes && r.Edit != nil {
				fixes = append(fixes, fix.AutofixSuggestion{
					RuleID:      rule.ID(),
					Severity:    severity,
					Tier:        rule.Tier(),
					Description: desc,
					Edit:        *r.Edit,
				})
			}
		}
		contexts[i] = rc
	}

	// One pre-order traversal, every enabled node visitor at every node.
	if snapshot != nil && snapshot.Root != nil {
		//nolint:errcheck // the walk callback never returns an error
		jsast.Walk(snapshot.Root, func(n *jsast.Node) error {
			for i, rr := range resolved {
				if nv, ok := rr.rule.(NodeVisitor); ok {
					e.safeVisit(contexts[i], nv, n)
				}
			}
			return nil
		})
	}

	// Text scanners run once per file, after all node visitors.
	for i, rr := range resolved {
		if ts, ok := rr.rule.(TextScanner); ok {
			e.safeScan(contexts[i], ts)
		}
	}

	return suggestions, fixes
}

// safeVisit invokes one visitor on one node with panic isolation: a
// failing rule is logged and skipped without affecting other rules or
// stopping the traversal.
func (e *Engine) safeVisit(rc *RuleContext, nv NodeVisitor, n *jsast.Node) {
	defer func() {
		if r := recover(); r != nil {
			e.log().Error("rule panicked on node, continuing",
				"rule", nv.ID(), "path", rc.FilePath, "node", n.Kind.String(), "panic", r)
		}
	}()
	nv.VisitNode(rc, n)
}

// safeScan invokes one text scanner with the same isolation as safeVisit.
func (e *Engine) safeScan(rc *RuleContext, ts TextScanner) {
	defer func() {
		if r := recover(); r != nil {
			e.log().Error("rule panicked on text scan, continuing",
				"rule", ts.ID(), "path", rc.FilePath, "panic", r)
		}
	}()
	ts.VisitText(rc)
}

func (e *Engine) log() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}
