package domain

import "time"

// RestoreProximityWindow is the tolerance used to decide that a variant
// was hidden "together with" its product. Cascade soft-deletes stamp the
// exact same timestamp on the product and its variants, but the window
// also absorbs clock skew between retried batches. Known to be a
// heuristic: a slow cascade can under-restore and an unrelated hide
// within the window over-restores. Kept at 5 seconds as documented.
const RestoreProximityWindow = 5 * time.Second

// RestorePlan is the outcome of planning a product restore before any
// mutation happens. Counts describe the product after the plan executes,
// for caller-facing confirmation messaging.
type RestorePlan struct {
	ToRestore []*Variant

	TotalVariants  int
	ActiveVariants int
	HiddenVariants int
}

// PlanProductRestore validates the restore preconditions and selects the
// variants to bring back. It mutates nothing; every failure is raised
// before the caller touches the store.
//
// Preconditions: the product must be hidden, and it must own at least one
// variant row of any state. The restore must not leave the product
// without a single active variant; that is judged on the planned result,
// not the current state. A cascade that hid every variant together still
// restores with the default flag because the proximity-paired set comes
// back with the product. Only when the selection would restore nothing
// on top of zero active variants does the plan fail and tell the
// operator to restore all variants instead.
func PlanProductRestore(product *Product, variants []*Variant, restoreAll bool) (*RestorePlan, error) {
	if !product.IsDeleted() {
		return nil, ErrProductNotDeleted
	}

	if len(variants) == 0 {
		return nil, &CannotRestoreError{
			ProductID: product.ID(),
			Message:   "no variants exist",
		}
	}

	active := 0
	for _, v := range variants {
		if !v.IsDeleted() {
			active++
		}
	}

	anchor := *product.DeletedAt()

	plan := &RestorePlan{
		ToRestore:     make([]*Variant, 0, len(variants)),
		TotalVariants: len(variants),
	}

	for _, v := range variants {
		if !v.IsDeleted() {
			continue
		}
		if restoreAll || v.HiddenWithin(anchor, RestoreProximityWindow) {
			plan.ToRestore = append(plan.ToRestore, v)
		}
	}

	if active+len(plan.ToRestore) == 0 {
		return nil, &CannotRestoreError{
			ProductID: product.ID(),
			Message:   "product would have no active variants; retry with restoreAllVariants=true to restore every hidden variant",
		}
	}

	plan.ActiveVariants = active + len(plan.ToRestore)
	plan.HiddenVariants = plan.TotalVariants - plan.ActiveVariants

	return plan, nil
}
