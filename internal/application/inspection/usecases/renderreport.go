package usecases

import (
	"context"
	"fmt"
	"strings"

	"luster/internal/domain/inspection"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
	"luster/internal/shared/services/markdown"
)

type RenderReportQuery struct {
	InspectionID uint
	// Format is "markdown" or "html". HTML output is sanitized.
	Format string
}

type RenderReportResult struct {
	Number      string
	Format      string
	Content     string
	ContentType string
}

// RenderReportUseCase produces a human-readable report for a single
// inspection: header, per-category breakdown, corrective actions and
// sign-offs.
type RenderReportUseCase struct {
	inspectionRepo inspection.InspectionRepository
	actionRepo     inspection.CorrectiveActionRepository
	signoffRepo    inspection.SignoffRepository
	facilities     FacilityDirectory
	users          UserDirectory
	markdownSvc    markdown.MarkdownService
	logger         logger.Interface
}

func NewRenderReportUseCase(
	inspectionRepo inspection.InspectionRepository,
	actionRepo inspection.CorrectiveActionRepository,
	signoffRepo inspection.SignoffRepository,
	facilities FacilityDirectory,
	users UserDirectory,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *RenderReportUseCase {
	return &RenderReportUseCase{
		inspectionRepo: inspectionRepo,
		actionRepo:     actionRepo,
		signoffRepo:    signoffRepo,
		facilities:     facilities,
		users:          users,
		markdownSvc:    markdownSvc,
		logger:         logger,
	}
}

func (uc *RenderReportUseCase) Execute(ctx context.Context, query RenderReportQuery) (*RenderReportResult, error) {
	if query.InspectionID == 0 {
		return nil, errors.NewValidationError("inspection ID is required")
	}

	format := query.Format
	if format == "" {
		format = "html"
	}
	if format != "html" && format != "markdown" {
		return nil, errors.NewValidationError("format must be html or markdown")
	}

	insp, err := uc.inspectionRepo.GetByID(ctx, query.InspectionID)
	if err != nil {
		uc.logger.Errorw("failed to load inspection", "inspection_id", query.InspectionID, "error", err)
		return nil, err
	}
	if insp == nil {
		return nil, errors.NewNotFoundError("inspection not found")
	}

	actions, err := uc.actionRepo.GetByInspectionID(ctx, insp.ID())
	if err != nil {
		return nil, err
	}
	signoffs, err := uc.signoffRepo.GetByInspectionID(ctx, insp.ID())
	if err != nil {
		return nil, err
	}

	md := uc.buildMarkdown(ctx, insp, actions, signoffs)

	if format == "markdown" {
		return &RenderReportResult{
			Number:      insp.Number(),
			Format:      format,
			Content:     md,
			ContentType: "text/markdown; charset=utf-8",
		}, nil
	}

	html, err := uc.markdownSvc.ToHTMLSanitized(md)
	if err != nil {
		uc.logger.Errorw("failed to render report", "inspection_id", insp.ID(), "error", err)
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &RenderReportResult{
		Number:      insp.Number(),
		Format:      format,
		Content:     html,
		ContentType: "text/html; charset=utf-8",
	}, nil
}

func (uc *RenderReportUseCase) buildMarkdown(
	ctx context.Context,
	insp *inspection.Inspection,
	actions []*inspection.CorrectiveAction,
	signoffs []*inspection.Signoff,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Inspection Report %s\n\n", insp.Number())

	facilityLabel := fmt.Sprintf("#%d", insp.FacilityID())
	if uc.facilities != nil {
		if facility, err := uc.facilities.GetFacility(ctx, insp.FacilityID()); err == nil && facility != nil {
			facilityLabel = facility.Name
		}
	}
	inspectorLabel := fmt.Sprintf("#%d", insp.InspectorID())
	if uc.users != nil {
		if user, err := uc.users.GetUser(ctx, insp.InspectorID()); err == nil && user != nil {
			inspectorLabel = user.Name
		}
	}

	fmt.Fprintf(&b, "- **Facility:** %s\n", facilityLabel)
	fmt.Fprintf(&b, "- **Inspector:** %s\n", inspectorLabel)
	fmt.Fprintf(&b, "- **Status:** %s\n", insp.Status())
	fmt.Fprintf(&b, "- **Scheduled:** %s\n", insp.ScheduledDate().Format("2006-01-02"))
	if insp.OverallScore() != nil {
		fmt.Fprintf(&b, "- **Overall score:** %d (%s)\n", *insp.OverallScore(), *insp.OverallRating())
	} else {
		b.WriteString("- **Overall score:** not scored\n")
	}
	if insp.Summary() != "" {
		fmt.Fprintf(&b, "\n%s\n", insp.Summary())
	}

	b.WriteString("\n## Checklist\n\n")
	for _, rollup := range inspection.RollupByCategory(insp.Items()) {
		fmt.Fprintf(&b, "### %s\n\n", rollup.Category)
		for _, item := range insp.Items() {
			if item.Category() != rollup.Category {
				continue
			}
			score := item.Score().String()
			if score == "" {
				score = "unscored"
			}
			fmt.Fprintf(&b, "- %s — **%s**", item.Text(), score)
			if item.Rating() != nil {
				fmt.Fprintf(&b, " (%d/5)", *item.Rating())
			}
			if item.Notes() != "" {
				fmt.Fprintf(&b, ": %s", item.Notes())
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(actions) > 0 {
		b.WriteString("## Corrective Actions\n\n")
		for _, action := range actions {
			fmt.Fprintf(&b, "- [%s] **%s** (%s)", action.Status(), action.Title(), action.Severity())
			if action.DueDate() != nil {
				fmt.Fprintf(&b, " — due %s", action.DueDate().Format("2006-01-02"))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(signoffs) > 0 {
		b.WriteString("## Sign-offs\n\n")
		for _, signoff := range signoffs {
			fmt.Fprintf(&b, "- %s (%s), %s", signoff.SignerName(), signoff.SignerType(), signoff.SignedAt().Format("2006-01-02 15:04"))
			if signoff.Comments() != "" {
				fmt.Fprintf(&b, ": %s", signoff.Comments())
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
