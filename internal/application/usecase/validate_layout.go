package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/validation"
	"github.com/bnema/dockyard/internal/logging"
)

// ValidateLayoutUseCase checks that a layout document loads into a sound
// control without touching any live one.
type ValidateLayoutUseCase struct {
	windows     port.WindowFactory
	idGenerator IDGenerator
}

// NewValidateLayoutUseCase creates a validator. Scratch controls open their
// windows through windows.
func NewValidateLayoutUseCase(windows port.WindowFactory, idGenerator IDGenerator) *ValidateLayoutUseCase {
	return &ValidateLayoutUseCase{windows: windows, idGenerator: idGenerator.orDefault()}
}

// LayoutReport is the outcome of a validation.
type LayoutReport struct {
	Problems []string
	// Reshaped is set when loading normalizes the tree, so saving the loaded
	// layout would not reproduce the document.
	Reshaped bool

	Workspaces int
	Items      int
	Hidden     int
	Minimized  int

	// Control is the scratch control built from the document, nil when it
	// could not be built.
	Control *ControlManager
}

// Valid reports whether no problem was found.
func (r *LayoutReport) Valid() bool {
	return len(r.Problems) == 0
}

// Execute validates doc. Problems are reported, not returned as an error.
func (uc *ValidateLayoutUseCase) Execute(ctx context.Context, doc *entity.LayoutDocument) (*LayoutReport, error) {
	log := logging.FromContext(ctx)
	if doc == nil {
		return nil, fmt.Errorf("layout document is required")
	}

	report := &LayoutReport{}
	if problems := validation.ValidateLayoutDocument(doc); len(problems) > 0 {
		report.Problems = problems
		log.Debug().Int("problem_count", len(problems)).Msg("layout document rejected")
		return report, nil
	}

	cm, err := BuildControl(ctx, doc, NewWindowManager(uc.windows), uc.idGenerator, "")
	if err != nil {
		report.Problems = append(report.Problems, err.Error())
		return report, nil
	}
	report.Control = cm

	built := BuildLayout(cm)
	for _, ws := range cm.Workspaces() {
		ws.CommitChanges(true)
		cm.EnsureWorkspaceHasTabNode(ctx, ws)
		report.Minimized += len(ws.MinimizedItems())
		if err := entity.CheckInvariants(ws.Tree()); err != nil {
			var invErr *entity.InvariantError
			if errors.As(err, &invErr) {
				for _, v := range invErr.Violations {
					report.Problems = append(report.Problems, fmt.Sprintf("workspace %q: %s", ws.ID(), v))
				}
				continue
			}
			report.Problems = append(report.Problems, err.Error())
		}
	}
	report.Reshaped = !reflect.DeepEqual(built, BuildLayout(cm))

	report.Workspaces = len(cm.Workspaces())
	report.Items = len(cm.Items())
	report.Hidden = len(cm.HiddenItems())

	log.Debug().
		Bool("valid", report.Valid()).
		Bool("reshaped", report.Reshaped).
		Int("item_count", report.Items).
		Msg("layout validated")
	return report, nil
}
