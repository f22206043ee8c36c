// file: controllers/category_controller.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/models"
	"NovaCTF/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateCategory 新增题目分类
func CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Alias       string `json:"alias"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	var existing models.Category
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "Category already exists")
		return
	}

	newCategory := models.Category{
		Name:        req.Name,
		Alias:       req.Alias,
		Description: req.Description,
	}
	if err := database.DB.Create(&newCategory).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"id":   newCategory.ID,
		"name": newCategory.Name,
	})
}

// GetCategoryList 查询分类列表
func GetCategoryList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var categories []models.Category
	var total int64

	db := database.DB.Model(&models.Category{})
	if search != "" {
		db = db.Where("name LIKE ? OR alias LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	db.Count(&total)
	db.Order("id asc").Offset((page - 1) * limit).Limit(limit).Find(&categories)

	utils.Success(c, gin.H{
		"total":      total,
		"categories": categories,
	})
}

// GetCategoryDetail 查询单个分类详情
func GetCategoryDetail(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的ID")
		return
	}

	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "分类不存在")
		return
	}
	utils.Success(c, category)
}

// UpdateCategory 修改分类
func UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的ID")
		return
	}

	var req struct {
		Alias       string `json:"alias"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "分类不存在")
		return
	}

	category.Alias = req.Alias
	category.Description = req.Description
	if err := database.DB.Save(&category).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "更新失败: "+err.Error())
		return
	}
	utils.Success(c, nil)
}

// DeleteCategory 删除分类，仍被题目引用时拒绝
func DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的ID")
		return
	}

	var challengeCount int64
	database.DB.Model(&models.Challenge{}).Where("category_id = ?", categoryID).Count(&challengeCount)
	if challengeCount > 0 {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "Cannot delete category with existing challenges")
		return
	}

	if err := database.DB.Delete(&models.Category{}, categoryID).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "删除失败: "+err.Error())
		return
	}
	utils.Success(c, nil)
}
