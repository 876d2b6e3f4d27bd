package gatekeeper

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	"github.com/gearshift-labs/partsdepot/internal/validation"
)

// Authenticate passes iff a session identity is attached.
func Authenticate() Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		if rc.Identity == nil {
			return apperror.Unauthenticated()
		}
		return nil
	}
}

// AuthorizeRole passes iff the identity's role is in allowedRoles.
func AuthorizeRole(allowedRoles ...entity.UserRole) Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		if hasRole(rc.Identity, allowedRoles) {
			return nil
		}
		return apperror.Forbidden("Forbidden: You do not have access.")
	}
}

// AuthorizeSelfOrRole passes iff the identity's role is in allowedRoles or the
// identity's own id equals the :id path parameter.
func AuthorizeSelfOrRole(allowedRoles ...entity.UserRole) Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		if hasRole(rc.Identity, allowedRoles) {
			return nil
		}
		if rc.Identity != nil && rc.Identity.ID.Hex() == rc.ParamID {
			return nil
		}
		return apperror.Forbidden("Forbidden: Insufficient permissions.")
	}
}

// AuthorizeResourceOwnership loads the target resource and passes iff the
// identity is an admin or the resource's stored owner. The loaded resource is
// attached to the context so later stages skip the duplicate lookup. Existence
// is confirmed before ownership so the 403 always refers to a real resource.
func AuthorizeResourceOwnership(entityName string, load Loader, notOwnerMsg string) Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		res, err := load(ctx, rc.ParamID)
		if err != nil {
			return apperror.From(err)
		}
		if res == nil {
			return apperror.NotFound(entityName, rc.ParamID)
		}
		rc.Loaded = res
		if hasRole(rc.Identity, []entity.UserRole{entity.UserRoleAdmin}) {
			return nil
		}
		owned, ok := res.(Owned)
		if !ok || rc.Identity == nil || owned.OwnerHex() != rc.Identity.ID.Hex() {
			return apperror.Forbidden(notOwnerMsg)
		}
		return nil
	}
}

// RestrictFieldUpdate halts when the body tries to set field and the identity's
// role is not in allowedRoles.
func RestrictFieldUpdate(field, forbiddenMsg string, allowedRoles ...entity.UserRole) Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		if _, present := rc.Body[field]; !present {
			return nil
		}
		if hasRole(rc.Identity, allowedRoles) {
			return nil
		}
		return apperror.Forbidden(forbiddenMsg)
	}
}

// RejectEmptyBody halts when the body has zero keys. It runs before any
// database read so malformed requests cost nothing.
func RejectEmptyBody() Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		if len(rc.Body) == 0 {
			return apperror.BadRequest("Request body cannot be empty.")
		}
		return nil
	}
}

// RequireEntityExists loads the target by the :id parameter, halting with a
// 404 naming the id when absent. A resource already attached by an earlier
// ownership stage is reused as is.
func RequireEntityExists(entityName string, load Loader) Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		if rc.Loaded != nil {
			return nil
		}
		res, err := load(ctx, rc.ParamID)
		if err != nil {
			return apperror.From(err)
		}
		if res == nil {
			return apperror.NotFound(entityName, rc.ParamID)
		}
		rc.Loaded = res
		return nil
	}
}

// RejectNoOpUpdate projects the loaded entity and the body onto the allowlist
// and halts when every allowlisted field present in the body already holds the
// stored value. Equality is shallow value equality per field.
func RejectNoOpUpdate(allowlist []string) Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		if rc.Loaded == nil {
			return nil
		}
		view := rc.Loaded.UpdateView()
		identical := true
		for _, field := range allowlist {
			bodyValue, present := rc.Body[field]
			if !present {
				continue
			}
			if !equalValues(bodyValue, view[field]) {
				identical = false
				break
			}
		}
		if identical {
			return apperror.BadRequest("No changes detected. Update request ignored.")
		}
		return nil
	}
}

// ValidateSchema runs the entity's declarative schema against the body.
func ValidateSchema(schema *validation.Schema, op validation.Op) Stage {
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		return schema.Validate(op, rc.Body, rc.BodyKeys)
	}
}

// ValidateOrderItems confirms every referenced partId exists in the catalog
// via one batch existence check. It runs after schema validation, so the items
// array is already known to be well formed; a malformed or missing id and a
// count mismatch produce the same answer.
func ValidateOrderItems(parts contract.ISparePartRepository) Stage {
	const msg = "One or more partId values do not exist in the database."
	return func(ctx context.Context, rc *Context) *apperror.AppError {
		raw, present := rc.Body["items"]
		if !present {
			return nil
		}
		arr, ok := raw.([]any)
		if !ok {
			return apperror.Validation(msg)
		}
		seen := make(map[string]struct{}, len(arr))
		ids := make([]string, 0, len(arr))
		for _, el := range arr {
			item, ok := el.(map[string]any)
			if !ok {
				return apperror.Validation(msg)
			}
			partID, ok := item["partId"].(string)
			if !ok || !primitive.IsValidObjectID(partID) {
				return apperror.Validation(msg)
			}
			if _, dup := seen[partID]; dup {
				continue
			}
			seen[partID] = struct{}{}
			ids = append(ids, partID)
		}
		count, err := parts.CountExistingByIDs(ctx, ids)
		if err != nil {
			return apperror.From(err)
		}
		if count != int64(len(ids)) {
			return apperror.Validation(msg)
		}
		return nil
	}
}

func hasRole(identity *entity.User, roles []entity.UserRole) bool {
	if identity == nil {
		return false
	}
	for _, r := range roles {
		if identity.Role == r {
			return true
		}
	}
	return false
}
