package usecase

import (
	"context"
	"fmt"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// PageAdminUseCase drives the admin CMS list. Every mutation follows
// the same discipline: send the request, then re-fetch the full list.
// The list returned to the caller is always the post-mutation fetch,
// never a locally patched copy.
type PageAdminUseCase struct {
	Pages PageGateway
}

func NewPageAdminUseCase(pages PageGateway) *PageAdminUseCase {
	return &PageAdminUseCase{Pages: pages}
}

func (uc *PageAdminUseCase) List(ctx context.Context, token string) ([]entity.Page, error) {
	pages, err := uc.Pages.ListPages(ctx, token)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	return pages, nil
}

// TogglePublish flips the publish flag of one page and returns the
// re-fetched list.
func (uc *PageAdminUseCase) TogglePublish(ctx context.Context, token string, id int) ([]entity.Page, error) {
	pages, err := uc.Pages.ListPages(ctx, token)
	if err != nil {
		return nil, mapGatewayErr(err)
	}

	var target *entity.Page
	for i := range pages {
		if pages[i].ID == id {
			target = &pages[i]
			break
		}
	}
	if target == nil {
		return nil, &DomainError{Code: "PAGE_NOT_FOUND", Message: fmt.Sprintf("page %d not found", id)}
	}

	target.IsPublished = !target.IsPublished
	if _, err := uc.Pages.UpdatePage(ctx, token, *target); err != nil {
		return nil, mapGatewayErr(err)
	}

	return uc.List(ctx, token)
}

// Delete removes a page. It refuses to act without confirmation and
// returns the re-fetched list on success.
func (uc *PageAdminUseCase) Delete(ctx context.Context, token string, id int, confirmed bool) ([]entity.Page, error) {
	if !confirmed {
		return nil, ErrConfirmationRequired
	}
	if err := uc.Pages.DeletePage(ctx, token, id); err != nil {
		return nil, mapGatewayErr(err)
	}
	return uc.List(ctx, token)
}
