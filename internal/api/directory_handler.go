package api

import (
	"net/http"

	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/gorilla/mux"
)

// ListBusinesses handles GET /api/v1/business
func (h *Handler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	q, err := h.listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categoryID, err := queryInt64Ptr(r, "categoryId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	verified, err := queryBoolPtr(r, "verified")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := repository.BusinessFilter{CategoryID: categoryID, District: queryStringPtr(r, "district"), Verified: verified}

	resp, err := h.business.List(r.Context(), filter, q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

// SearchBusinesses handles GET /api/v1/business/search
func (h *Handler) SearchBusinesses(w http.ResponseWriter, r *http.Request) {
	q, err := h.listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.business.Search(r.Context(), r.URL.Query().Get("q"), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

func (h *Handler) BusinessCategories(w http.ResponseWriter, r *http.Request) {
	tree, err := h.business.Categories(r.Context(), h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, tree)
}

func (h *Handler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.business.Get(r.Context(), id, h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, b)
}

func (h *Handler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var req model.BusinessRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.business.Create(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "Business submitted successfully", b)
}

func (h *Handler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.BusinessUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.business.Update(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Business updated successfully", b)
}

func (h *Handler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.business.Delete(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Business deleted successfully", nil)
}

// VerifyBusiness handles POST /api/v1/business/{id}/verify
func (h *Handler) VerifyBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.business.Verify(r.Context(), h.principal(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Business verified successfully", b)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.business.CreateCategory(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "Category created successfully", c)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.CategoryUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.business.UpdateCategory(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Category updated successfully", c)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.business.DeleteCategory(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Category deleted successfully", nil)
}

// ListDistricts handles GET /api/v1/locations/districts
func (h *Handler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.locations.Districts(r.Context(), h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, districts)
}

func (h *Handler) GetDistrict(w http.ResponseWriter, r *http.Request) {
	d, err := h.locations.District(r.Context(), mux.Vars(r)["slug"], h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, d)
}

func (h *Handler) CreateDistrict(w http.ResponseWriter, r *http.Request) {
	var req model.DistrictRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	d, err := h.locations.CreateDistrict(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "District created successfully", d)
}

func (h *Handler) UpdateDistrict(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.DistrictUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	d, err := h.locations.UpdateDistrict(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "District updated successfully", d)
}

func (h *Handler) DeleteDistrict(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.locations.DeleteDistrict(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "District deleted successfully", nil)
}

// ListPOIs handles GET /api/v1/locations/pois
func (h *Handler) ListPOIs(w http.ResponseWriter, r *http.Request) {
	q, err := h.listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	districtID, err := queryInt64Ptr(r, "districtId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := repository.POIFilter{Category: queryStringPtr(r, "category"), DistrictID: districtID}

	resp, err := h.locations.POIs(r.Context(), filter, q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

func (h *Handler) POICategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.locations.POICategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, cats)
}

func (h *Handler) GetPOI(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	poi, err := h.locations.POI(r.Context(), id, h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, poi)
}

func (h *Handler) CreatePOI(w http.ResponseWriter, r *http.Request) {
	var req model.POIRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	poi, err := h.locations.CreatePOI(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "Point of interest created successfully", poi)
}

func (h *Handler) UpdatePOI(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.POIUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	poi, err := h.locations.UpdatePOI(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Point of interest updated successfully", poi)
}

func (h *Handler) DeletePOI(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.locations.DeletePOI(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Point of interest deleted successfully", nil)
}

// ListAccommodations handles GET /api/v1/locations/accommodations
func (h *Handler) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	q, err := h.listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	districtID, err := queryInt64Ptr(r, "districtId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var stars *int
	if raw := r.URL.Query().Get("stars"); raw != "" {
		n, err := queryInt(r, "stars", 0)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		stars = &n
	}
	filter := repository.AccommodationFilter{Type: queryStringPtr(r, "type"), Stars: stars, DistrictID: districtID}

	resp, err := h.locations.Accommodations(r.Context(), filter, q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, resp)
}

func (h *Handler) AccommodationTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.locations.AccommodationTypes(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, types)
}

func (h *Handler) GetAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.locations.Accommodation(r.Context(), id, h.lang(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.data(w, a)
}

func (h *Handler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	var req model.AccommodationRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.locations.CreateAccommodation(r.Context(), h.principal(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.created(w, "Accommodation created successfully", a)
}

func (h *Handler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req model.AccommodationUpdate
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.locations.UpdateAccommodation(r.Context(), h.principal(r), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Accommodation updated successfully", a)
}

func (h *Handler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.locations.DeleteAccommodation(r.Context(), h.principal(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.message(w, "Accommodation deleted successfully", nil)
}
