package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/storefront/internal/dto"
	"github.com/SscSPs/storefront/internal/geo"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// geoHandler serves the country, province and city reference data.
type geoHandler struct {
	directory *geo.Directory
}

func newGeoHandler(directory *geo.Directory) *geoHandler {
	return &geoHandler{directory: directory}
}

// registerGeoRoutes registers the public reference data routes.
func registerGeoRoutes(rg *gin.RouterGroup, directory *geo.Directory) {
	h := newGeoHandler(directory)

	g := rg.Group("/geo")
	{
		g.GET("/countries", h.listCountries)
		g.GET("/countries/options", h.countryOptions)
		g.GET("/countries/by-name/:name", h.getCountryByName)
		g.GET("/countries/:code", h.getCountry)
		g.GET("/countries/:code/provinces", h.listProvinces)
		g.GET("/countries/:code/provinces/options", h.provinceOptions)
		g.GET("/countries/:code/provinces/:province/cities", h.listCities)
		g.GET("/countries/:code/provinces/:province/cities/options", h.cityOptions)
		g.GET("/countries/:code/tax", h.getTaxInfo)
		g.GET("/regions/:code", h.getRegion)
	}
}

// listCountries godoc
// @Summary List or search countries
// @Description Returns every country, or those whose name or code contains q
// @Tags geo
// @Produce json
// @Param q query string false "Case-insensitive search"
// @Success 200 {array} geo.Country
// @Failure 400 {object} dto.ErrorResponse
// @Router /geo/countries [get]
func (h *geoHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	if strings.TrimSpace(params.Query) == "" {
		c.JSON(http.StatusOK, h.directory.Countries())
		return
	}
	countries := h.directory.SearchCountries(params.Query)
	logger.Debug("Country search", slog.String("q", params.Query), slog.Int("count", len(countries)))
	c.JSON(http.StatusOK, countries)
}

// countryOptions godoc
// @Summary Country select options
// @Tags geo
// @Produce json
// @Success 200 {array} geo.Option
// @Router /geo/countries/options [get]
func (h *geoHandler) countryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.CountryOptions())
}

// getCountry godoc
// @Summary Get a country by code
// @Tags geo
// @Produce json
// @Param code path string true "ISO 3166-1 alpha-2 code"
// @Success 200 {object} geo.Country
// @Failure 404 {object} dto.ErrorResponse
// @Router /geo/countries/{code} [get]
func (h *geoHandler) getCountry(c *gin.Context) {
	country := h.directory.CountryByCode(c.Param("code"))
	if country == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Country not found"})
		return
	}
	c.JSON(http.StatusOK, country)
}

// getCountryByName godoc
// @Summary Get a country by name
// @Tags geo
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} geo.Country
// @Failure 404 {object} dto.ErrorResponse
// @Router /geo/countries/by-name/{name} [get]
func (h *geoHandler) getCountryByName(c *gin.Context) {
	country := h.directory.CountryByName(c.Param("name"))
	if country == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Country not found"})
		return
	}
	c.JSON(http.StatusOK, country)
}

// listProvinces godoc
// @Summary List or search a country's provinces
// @Description Unknown countries return an empty list
// @Tags geo
// @Produce json
// @Param code path string true "Country code"
// @Param q query string false "Case-insensitive search"
// @Success 200 {array} geo.Province
// @Router /geo/countries/{code}/provinces [get]
func (h *geoHandler) listProvinces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	code := c.Param("code")
	if strings.TrimSpace(params.Query) == "" {
		c.JSON(http.StatusOK, h.directory.ProvincesByCountry(code))
		return
	}
	c.JSON(http.StatusOK, h.directory.SearchProvinces(code, params.Query))
}

// provinceOptions godoc
// @Summary Province select options
// @Tags geo
// @Produce json
// @Param code path string true "Country code"
// @Success 200 {array} geo.Option
// @Router /geo/countries/{code}/provinces/options [get]
func (h *geoHandler) provinceOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.ProvinceOptions(c.Param("code")))
}

// listCities godoc
// @Summary List a province's cities
// @Tags geo
// @Produce json
// @Param code path string true "Country code"
// @Param province path string true "Province code"
// @Success 200 {array} geo.City
// @Router /geo/countries/{code}/provinces/{province}/cities [get]
func (h *geoHandler) listCities(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.CitiesByProvince(c.Param("code"), c.Param("province")))
}

// cityOptions godoc
// @Summary City select options
// @Tags geo
// @Produce json
// @Param code path string true "Country code"
// @Param province path string true "Province code"
// @Success 200 {array} geo.Option
// @Router /geo/countries/{code}/provinces/{province}/cities/options [get]
func (h *geoHandler) cityOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.CityOptions(c.Param("code"), c.Param("province")))
}

// getTaxInfo godoc
// @Summary Resolve the tax record for an address
// @Description City overrides province, province overrides country
// @Tags geo
// @Produce json
// @Param code path string true "Country code"
// @Param province query string false "Province code"
// @Param city query string false "City code"
// @Success 200 {object} dto.TaxInfoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /geo/countries/{code}/tax [get]
func (h *geoHandler) getTaxInfo(c *gin.Context) {
	code := c.Param("code")
	if h.directory.CountryByCode(code) == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Country not found"})
		return
	}
	province := c.Query("province")
	city := c.Query("city")
	info := h.directory.TaxInfo(code, province, city)
	c.JSON(http.StatusOK, dto.ToTaxInfoResponse(
		strings.ToUpper(code), province, city,
		info, info.Rate(), h.directory.Currency(code), h.directory.CountryRegion(code),
	))
}

// getRegion godoc
// @Summary Tax region of a country code
// @Description Codes missing from the dataset still resolve, falling back to Other
// @Tags geo
// @Produce json
// @Param code path string true "Country code"
// @Success 200 {object} dto.RegionResponse
// @Router /geo/regions/{code} [get]
func (h *geoHandler) getRegion(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	c.JSON(http.StatusOK, dto.RegionResponse{CountryCode: code, Region: string(h.directory.CountryRegion(code))})
}
