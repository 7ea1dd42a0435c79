/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-11-03 10:12:40
 * @LastEditTime: 2026-02-17 18:40:21
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权访问，可以由 Handler 转换为 403
	ErrForbidden = errors.New("操作禁止")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrValidation 表示上传前置校验失败（类型、大小、数量），转换为 400。
	// 校验失败发生在任何副作用之前。
	ErrValidation = errors.New("上传校验失败")

	// ErrUpload 表示远端对象存储上传失败，转换为 500。
	// 此错误发生后绝不允许落库媒体记录。
	ErrUpload = errors.New("对象存储上传失败")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")

	// ErrInvalidProviderType 表示无效的媒体存储提供者类型，转换为 400
	ErrInvalidProviderType = errors.New("无效的媒体存储提供者类型")
)
