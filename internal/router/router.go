package router

import (
	"context"
	"strings"

	"sembang-router/internal/dialect"
	"sembang-router/internal/intent"
	"sembang-router/internal/research"
	"sembang-router/internal/safety"
	"sembang-router/internal/session"
	"sembang-router/pkg/textnorm"
)

// Route runs the full pipeline: normalize → detect language/dialect
// (session preference, then explicit-request override) → classify intent
// → reformulate (web research only) → safety verdicts → assemble the
// decision. It never fails on message content; the error return exists
// for future store backends with real I/O.
func (r *MessageRouter) Route(ctx context.Context, text string, rctx Context) (Decision, error) {
	norm := textnorm.Normalize(text)

	// Session bookkeeping before analysis, so the audit trail includes
	// rejected turns too.
	r.store.AddUserTurn(rctx.SessionKey, norm.Normalized)

	detection := dialect.Detect(norm.Normalized)
	explicit := dialect.DetectExplicitRequest(norm.Normalized)
	if explicit.Requested {
		detection.ExplicitRequest = true
		r.store.ApplyExplicitRequest(rctx.SessionKey, explicit)
	}
	prefs := r.store.GetPreferences(rctx.SessionKey)
	resolvedLang, resolvedDialect := resolveLanguage(detection, explicit, prefs.Dialect, prefs.Language)

	ir := intent.Classify(norm.Normalized, intent.Context{HasDoc: rctx.HasDoc})

	var query *research.ReformulatedQuery
	if ir.Intent == intent.IntentWebResearch {
		q := research.Reformulate(norm.Normalized)
		query = &q
	}

	report := SafetyReport{
		Injection: safety.CheckPromptInjection(norm.Normalized),
		Budget: safety.CheckBudget(safety.BudgetInput{
			Message:          norm.Normalized,
			MaxContextTokens: r.cfg.MaxContextTokens,
		}),
		RateOK: true,
	}
	if r.guard != nil {
		report.RateOK = r.guard.Allow(rctx.SessionKey)
	}

	routeType := resolveRoute(ir.Intent, rctx)
	decoding := decodingByRoute[routeType]

	decision := Decision{
		RouteType:    routeType,
		SystemPrompt: r.buildSystemPrompt(routeType, detection, resolvedDialect),
		Lang:         resolvedLang,
		Dialect:      resolvedDialect,
		Intent:       ir,
		Detection:    detection,
		Decoding:     &decoding,
		Query:        query,
		Safety:       report,
		TurnCount:    r.store.GetRouterContext(rctx.SessionKey).TurnCount,
	}

	if !report.Injection.Safe || !report.Budget.OK || !report.RateOK {
		r.l.Warnf(ctx, "%s: safety flagged (injection=%v budget=%v rate=%v) session=%s",
			LogPrefixRoute, report.Injection.Safe, report.Budget.OK, report.RateOK, rctx.SessionKey)
	}
	r.l.Infof(ctx, "%s: route=%s intent=%s lang=%s dialect=%s turns=%d",
		LogPrefixRoute, decision.RouteType, ir.Intent, resolvedLang, resolvedDialect, decision.TurnCount)

	return decision, nil
}

// resolveLanguage layers the sticky session preference under this
// turn's detection, then lets an explicit request in the current turn
// override both.
func resolveLanguage(det dialect.Result, explicit dialect.ExplicitRequest, prefDialect string, prefLang dialect.Language) (dialect.Language, dialect.Dialect) {
	lang := det.Language
	d := det.Dialect

	// An explicit English switch is itself sticky: while it holds and
	// the turn shows no Malay cues, any leftover dialect preference
	// stays dormant instead of attaching a dialect to an English reply.
	stickyEnglish := prefLang == dialect.LangEnglish && det.Dialect == dialect.DialectNone

	// Sticky preference fills in when this turn is unmarked.
	if !stickyEnglish && (d == dialect.DialectNone || d == dialect.DialectStandard) {
		switch prefDialect {
		case session.PrefDialectKlate:
			d = dialect.DialectKelantan
			lang = dialect.LangMalay
		case session.PrefDialectUtara:
			d = dialect.DialectUtara
			lang = dialect.LangMalay
		}
	}
	if prefLang != "" && det.Dialect == dialect.DialectNone {
		lang = prefLang
	}

	// An explicit request this turn wins over everything.
	if explicit.Requested {
		if explicit.Lang != "" {
			lang = explicit.Lang
			d = dialect.DialectNone
		}
		if explicit.Dialect != "" {
			d = explicit.Dialect
			if d != dialect.DialectNone {
				lang = dialect.LangMalay
			}
		}
	}
	return lang, d
}

// resolveRoute applies the fixed precedence: attachments first, then the
// classified intent.
func resolveRoute(it intent.Intent, rctx Context) RouteType {
	switch {
	case rctx.HasDoc:
		return RouteDocument
	case rctx.HasImage:
		return RouteVision
	case it == intent.IntentWebResearch:
		return RouteWebResearch
	case it == intent.IntentSmalltalk:
		return RouteSmalltalk
	case it == intent.IntentTask:
		return RouteTask
	default:
		return RouteGeneralChat
	}
}

func (r *MessageRouter) buildSystemPrompt(routeType RouteType, det dialect.Result, resolved dialect.Dialect) string {
	var base string
	switch routeType {
	case RouteDocument:
		base = promptDocument
	case RouteVision:
		base = promptVision
	case RouteWebResearch:
		base = promptWebResearch
	case RouteSmalltalk:
		base = promptSmalltalk
	case RouteTask:
		base = promptTask
	default:
		base = promptGeneralChat
	}

	if resolved == dialect.DialectUtara || resolved == dialect.DialectKelantan {
		guidance := det
		guidance.Dialect = resolved
		stab := dialect.BuildSmalltalkStabilizer(guidance, r.cfg.StabilizerLevel)
		return base + "\n\n" + strings.TrimSpace(stab.Instructions)
	}
	return base
}
