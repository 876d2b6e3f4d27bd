package gatekeeper

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	"github.com/gearshift-labs/partsdepot/internal/validation"
)

func identityWithRole(role entity.UserRole) *entity.User {
	return &entity.User{ID: primitive.NewObjectID(), Name: "Test", Role: role}
}

func bodyContext(t *testing.T, identity *entity.User, payload string) *Context {
	t.Helper()
	rc := &Context{Identity: identity}
	require.Nil(t, rc.DecodeBody(strings.NewReader(payload)))
	return rc
}

func TestAuthenticate(t *testing.T) {
	rc := &Context{}
	err := Authenticate()(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "Unauthorized", err.Message)

	rc.Identity = identityWithRole(entity.UserRoleClient)
	assert.Nil(t, Authenticate()(context.Background(), rc))
}

func TestAuthorizeRole(t *testing.T) {
	stage := AuthorizeRole(entity.UserRoleAdmin, entity.UserRoleEmployee)

	rc := &Context{Identity: identityWithRole(entity.UserRoleClient)}
	err := stage(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.Status)
	assert.Equal(t, "Forbidden: You do not have access.", err.Message)

	rc.Identity = identityWithRole(entity.UserRoleEmployee)
	assert.Nil(t, stage(context.Background(), rc))
	rc.Identity = identityWithRole(entity.UserRoleAdmin)
	assert.Nil(t, stage(context.Background(), rc))
}

func TestAuthorizeSelfOrRole(t *testing.T) {
	stage := AuthorizeSelfOrRole(entity.UserRoleAdmin)
	self := identityWithRole(entity.UserRoleClient)

	rc := &Context{Identity: self, ParamID: self.ID.Hex()}
	assert.Nil(t, stage(context.Background(), rc), "a client may touch their own record")

	rc = &Context{Identity: self, ParamID: primitive.NewObjectID().Hex()}
	err := stage(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, "Forbidden: Insufficient permissions.", err.Message)

	rc = &Context{Identity: identityWithRole(entity.UserRoleAdmin), ParamID: primitive.NewObjectID().Hex()}
	assert.Nil(t, stage(context.Background(), rc), "an admin may touch any record")
}

func carLoaderFor(car *entity.Car, loadErr error) Loader {
	return func(ctx context.Context, id string) (Resource, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		if car == nil || car.ID.Hex() != id {
			return nil, nil
		}
		return car, nil
	}
}

func TestAuthorizeResourceOwnership(t *testing.T) {
	owner := identityWithRole(entity.UserRoleClient)
	car := &entity.Car{ID: primitive.NewObjectID(), Make: "Toyota", OwnerID: owner.ID}
	stage := AuthorizeResourceOwnership("Car", carLoaderFor(car, nil), "Forbidden: You do not own this car.")

	rc := &Context{Identity: owner, ParamID: car.ID.Hex()}
	assert.Nil(t, stage(context.Background(), rc))
	assert.Same(t, Resource(car), rc.Loaded, "the loaded car must be attached for later stages")

	stranger := identityWithRole(entity.UserRoleClient)
	rc = &Context{Identity: stranger, ParamID: car.ID.Hex()}
	err := stage(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.Status)
	assert.Equal(t, "Forbidden: You do not own this car.", err.Message)

	admin := identityWithRole(entity.UserRoleAdmin)
	rc = &Context{Identity: admin, ParamID: car.ID.Hex()}
	assert.Nil(t, stage(context.Background(), rc), "admins bypass the ownership check")
}

func TestAuthorizeResourceOwnershipMissingResource(t *testing.T) {
	stage := AuthorizeResourceOwnership("Car", carLoaderFor(nil, nil), "Forbidden: You do not own this car.")
	id := primitive.NewObjectID().Hex()
	rc := &Context{Identity: identityWithRole(entity.UserRoleClient), ParamID: id}

	err := stage(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Car with ID "+id+" not found.", err.Message)
}

func TestAuthorizeResourceOwnershipLoaderError(t *testing.T) {
	stage := AuthorizeResourceOwnership("Car", carLoaderFor(nil, errors.New("boom")), "nope")
	rc := &Context{Identity: identityWithRole(entity.UserRoleClient), ParamID: primitive.NewObjectID().Hex()}

	err := stage(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestRestrictFieldUpdate(t *testing.T) {
	stage := RestrictFieldUpdate("role", "Forbidden: Only admins can update roles.", entity.UserRoleAdmin)

	rc := bodyContext(t, identityWithRole(entity.UserRoleClient), `{"name":"Jo"}`)
	assert.Nil(t, stage(context.Background(), rc), "no role key, nothing to restrict")

	rc = bodyContext(t, identityWithRole(entity.UserRoleClient), `{"role":"admin"}`)
	err := stage(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, "Forbidden: Only admins can update roles.", err.Message)

	rc = bodyContext(t, identityWithRole(entity.UserRoleAdmin), `{"role":"employee"}`)
	assert.Nil(t, stage(context.Background(), rc))
}

func TestRejectEmptyBody(t *testing.T) {
	rc := bodyContext(t, nil, ``)
	err := RejectEmptyBody()(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Request body cannot be empty.", err.Message)

	rc = bodyContext(t, nil, `{}`)
	assert.NotNil(t, RejectEmptyBody()(context.Background(), rc))

	rc = bodyContext(t, nil, `{"name":"x"}`)
	assert.Nil(t, RejectEmptyBody()(context.Background(), rc))
}

func TestRequireEntityExists(t *testing.T) {
	car := &entity.Car{ID: primitive.NewObjectID()}
	stage := RequireEntityExists("Car", carLoaderFor(car, nil))

	rc := &Context{ParamID: car.ID.Hex()}
	assert.Nil(t, stage(context.Background(), rc))
	assert.Same(t, Resource(car), rc.Loaded)

	missing := primitive.NewObjectID().Hex()
	rc = &Context{ParamID: missing}
	err := stage(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, "Car with ID "+missing+" not found.", err.Message)
}

func TestRequireEntityExistsSkipsDuplicateLookup(t *testing.T) {
	calls := 0
	loader := func(ctx context.Context, id string) (Resource, error) {
		calls++
		return nil, nil
	}
	already := &entity.Car{ID: primitive.NewObjectID()}
	rc := &Context{ParamID: already.ID.Hex(), Loaded: already}

	assert.Nil(t, RequireEntityExists("Car", loader)(context.Background(), rc))
	assert.Zero(t, calls, "an attached resource must not be reloaded")
}

func TestRejectNoOpUpdate(t *testing.T) {
	car := &entity.Car{
		ID: primitive.NewObjectID(), Make: "Toyota", Model: "Corolla",
		Year: 2020, EngineType: "Petrol", VIN: "1HGCM82633A004352", Category: "Sedan",
	}

	rc := bodyContext(t, nil, `{"make":"Toyota","year":2020}`)
	rc.Loaded = car
	err := RejectNoOpUpdate(entity.CarUpdateFields)(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "No changes detected. Update request ignored.", err.Message)

	rc = bodyContext(t, nil, `{"make":"Toyota","year":2021}`)
	rc.Loaded = car
	assert.Nil(t, RejectNoOpUpdate(entity.CarUpdateFields)(context.Background(), rc))
}

func TestRejectNoOpUpdateIgnoresUnlistedKeys(t *testing.T) {
	// Keys outside the allowlist don't count as changes; schema validation
	// rejects them later in the chain.
	car := &entity.Car{ID: primitive.NewObjectID(), Make: "Toyota"}
	rc := bodyContext(t, nil, `{"make":"Toyota","bogus":"x"}`)
	rc.Loaded = car

	err := RejectNoOpUpdate(entity.CarUpdateFields)(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, "No changes detected. Update request ignored.", err.Message)
}

func TestRejectNoOpUpdateWithoutLoadedResource(t *testing.T) {
	rc := bodyContext(t, nil, `{"make":"Honda"}`)
	assert.Nil(t, RejectNoOpUpdate(entity.CarUpdateFields)(context.Background(), rc))
}

type countingPartRepo struct {
	existing map[string]bool
	lastIDs  []string
	calls    int
	fail     bool
}

func (r *countingPartRepo) GetSpareParts(ctx context.Context) ([]entity.SparePart, error) {
	return nil, nil
}
func (r *countingPartRepo) GetSparePartByID(ctx context.Context, id string) (*entity.SparePart, error) {
	return nil, nil
}
func (r *countingPartRepo) CreateSparePart(ctx context.Context, part *entity.SparePart) (string, error) {
	return "", nil
}
func (r *countingPartRepo) UpdateSparePartByID(ctx context.Context, id string, updates map[string]any) (bool, error) {
	return false, nil
}
func (r *countingPartRepo) DeleteSparePartByID(ctx context.Context, id string) (bool, error) {
	return false, nil
}
func (r *countingPartRepo) CountExistingByIDs(ctx context.Context, ids []string) (int64, error) {
	r.calls++
	r.lastIDs = ids
	if r.fail {
		return 0, errors.New("count failed")
	}
	var n int64
	for _, id := range ids {
		if r.existing[id] {
			n++
		}
	}
	return n, nil
}

func TestValidateOrderItems(t *testing.T) {
	a := primitive.NewObjectID().Hex()
	b := primitive.NewObjectID().Hex()
	repo := &countingPartRepo{existing: map[string]bool{a: true, b: true}}
	stage := ValidateOrderItems(repo)

	rc := bodyContext(t, nil, `{"items":[{"partId":"`+a+`","quantity":1},{"partId":"`+b+`","quantity":2}]}`)
	assert.Nil(t, stage(context.Background(), rc))
	assert.Equal(t, 1, repo.calls, "existence must be one batch query")
}

func TestValidateOrderItemsMissingPart(t *testing.T) {
	a := primitive.NewObjectID().Hex()
	ghost := primitive.NewObjectID().Hex()
	repo := &countingPartRepo{existing: map[string]bool{a: true}}

	rc := bodyContext(t, nil, `{"items":[{"partId":"`+a+`","quantity":1},{"partId":"`+ghost+`","quantity":1}]}`)
	err := ValidateOrderItems(repo)(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "One or more partId values do not exist in the database.", err.Message)
}

func TestValidateOrderItemsDeduplicates(t *testing.T) {
	a := primitive.NewObjectID().Hex()
	repo := &countingPartRepo{existing: map[string]bool{a: true}}

	rc := bodyContext(t, nil, `{"items":[{"partId":"`+a+`","quantity":1},{"partId":"`+a+`","quantity":3}]}`)
	assert.Nil(t, ValidateOrderItems(repo)(context.Background(), rc))
	assert.Equal(t, []string{a}, repo.lastIDs, "repeated partIds collapse to one lookup id")
}

func TestValidateOrderItemsAbsentKeyPasses(t *testing.T) {
	repo := &countingPartRepo{}
	rc := bodyContext(t, nil, `{"status":"Shipped"}`)
	assert.Nil(t, ValidateOrderItems(repo)(context.Background(), rc))
	assert.Zero(t, repo.calls)
}

func TestValidateSchemaStage(t *testing.T) {
	rc := bodyContext(t, nil, `{"year":1700}`)
	err := ValidateSchema(&validation.CarSchema, validation.Update)(context.Background(), rc)
	require.NotNil(t, err)
	assert.Equal(t, "Year must be a valid year.", err.Message)

	rc = bodyContext(t, nil, `{"year":2019}`)
	assert.Nil(t, ValidateSchema(&validation.CarSchema, validation.Update)(context.Background(), rc))
}

// The car update chain in route order: the empty-body guard must fire before
// the ownership lookup, and ownership before no-op detection.
func TestCarUpdateChainOrdering(t *testing.T) {
	owner := identityWithRole(entity.UserRoleClient)
	car := &entity.Car{
		ID: primitive.NewObjectID(), Make: "Toyota", Model: "Corolla",
		Year: 2020, EngineType: "Petrol", VIN: "1HGCM82633A004352", Category: "Sedan",
		OwnerID: owner.ID,
	}
	chain := func(rc *Context) *apperror.AppError {
		return Run(context.Background(), rc,
			Authenticate(),
			RejectEmptyBody(),
			AuthorizeResourceOwnership("Car", carLoaderFor(car, nil), "Forbidden: You do not own this car."),
			RejectNoOpUpdate(entity.CarUpdateFields),
			ValidateSchema(&validation.CarSchema, validation.Update),
		)
	}

	// empty body beats the missing-resource 404
	rc := bodyContext(t, owner, `{}`)
	rc.ParamID = primitive.NewObjectID().Hex()
	err := chain(rc)
	require.NotNil(t, err)
	assert.Equal(t, "Request body cannot be empty.", err.Message)

	// ownership beats validation
	stranger := identityWithRole(entity.UserRoleClient)
	rc = bodyContext(t, stranger, `{"year":1700}`)
	rc.ParamID = car.ID.Hex()
	err = chain(rc)
	require.NotNil(t, err)
	assert.Equal(t, "Forbidden: You do not own this car.", err.Message)

	// no-op beats validation of other fields
	rc = bodyContext(t, owner, `{"make":"Toyota"}`)
	rc.ParamID = car.ID.Hex()
	err = chain(rc)
	require.NotNil(t, err)
	assert.Equal(t, "No changes detected. Update request ignored.", err.Message)

	// a real change with a valid value passes the whole chain
	rc = bodyContext(t, owner, `{"make":"Honda"}`)
	rc.ParamID = car.ID.Hex()
	assert.Nil(t, chain(rc))
}
